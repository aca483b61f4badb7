package config

import (
	"log/slog"
	"os"

	"github.com/signadot/keepconf/diag"
)

type Option func(*File)

// WithSink sets where diagnostics go. The default logs them through the
// file's logger.
func WithSink(s diag.Sink) Option {
	return func(f *File) { f.sink = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(f *File) { f.logger = l }
}

// WithPerm sets the mode of a newly written file.
func WithPerm(p os.FileMode) Option {
	return func(f *File) { f.perm = p }
}

// WithName sets the name used in diagnostics and by a manager. It
// defaults to the base name of the path.
func WithName(name string) Option {
	return func(f *File) { f.name = name }
}
