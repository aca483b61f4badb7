package manager

import (
	"log/slog"
	"time"

	"github.com/signadot/keepconf/diag"
)

type Option func(*Manager)

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithSink sets the diagnostic sink given to files made by NewFile.
func WithSink(s diag.Sink) Option {
	return func(m *Manager) { m.sink = s }
}

// WithUmask is applied to the mode of the directory when New creates it.
func WithUmask(umask int) Option {
	return func(m *Manager) { m.umask = umask }
}

// WithDebounce sets how long Watch waits for a burst of changes to a
// file to settle before reloading it.
func WithDebounce(d time.Duration) Option {
	return func(m *Manager) { m.debounce = d }
}

// WithConcurrency limits how many files LoadAll and SaveAll process at
// once. n <= 0 means no limit.
func WithConcurrency(n int) Option {
	return func(m *Manager) { m.limit = n }
}
