package manager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/signadot/keepconf/config"
	"github.com/signadot/keepconf/diag"
	"github.com/signadot/keepconf/merge"
)

const defaultDebounce = 100 * time.Millisecond

type Manager struct {
	dir      string
	umask    int
	limit    int
	debounce time.Duration
	logger   *slog.Logger
	sink     diag.Sink

	mu    sync.RWMutex
	files map[string]*entry
}

type entry struct {
	mu sync.Mutex
	f  *config.File
}

// New returns a manager for the files in dir, creating dir if it does
// not exist.
func New(dir string, opts ...Option) (*Manager, error) {
	m := &Manager{
		dir:      dir,
		umask:    022,
		debounce: defaultDebounce,
		files:    map[string]*entry{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.sink == nil {
		m.sink = diag.Slog(m.logger)
	}
	if err := m.mkdirAll(dir, 0755); err != nil {
		diag.Emitf(m.sink, filepath.Base(dir), "unable to create %s: %v", dir, err)
		return nil, fmt.Errorf("%w: %w", ErrDir, err)
	}
	return m, nil
}

func (m *Manager) mkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm&^os.FileMode(m.umask))
}

func (m *Manager) Dir() string { return m.dir }

// Register adds f under its name.
func (m *Manager) Register(f *config.File) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[f.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, f.Name())
	}
	m.files[f.Name()] = &entry{f: f}
	return nil
}

// NewFile makes and registers a file called name in the manager's
// directory. The file reports through the manager's logger and sink
// unless opts say otherwise.
func (m *Manager) NewFile(name string, policy merge.Policy, declare func(*config.Declaration), opts ...config.Option) (*config.File, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return nil, fmt.Errorf("%w: %q", ErrBadName, name)
	}
	all := append([]config.Option{
		config.WithLogger(m.logger),
		config.WithSink(m.sink),
		config.WithName(name),
	}, opts...)
	f := config.New(filepath.Join(m.dir, name), policy, declare, all...)
	if err := m.Register(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Get returns the file registered as name, or nil. Use Do to access it
// while other goroutines may load or save it.
func (m *Manager) Get(name string) *config.File {
	e := m.entry(name)
	if e == nil {
		return nil
	}
	return e.f
}

func (m *Manager) entry(name string) *entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files[name]
}

// Names returns the registered names in sorted order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.files))
}

// Do calls fn with the file registered as name, holding that file's
// lock.
func (m *Manager) Do(name string, fn func(*config.File) error) error {
	e := m.entry(name)
	if e == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.f)
}

// Reload loads the file registered as name again.
func (m *Manager) Reload(name string) error {
	return m.timed("reload", name, (*config.File).Reload)
}

func (m *Manager) timed(op, name string, fn func(*config.File) error) error {
	start := time.Now()
	err := m.Do(name, fn)
	observe(op, start, err)
	return err
}

// LoadAll loads every registered file. Errors from individual files are
// joined; a cancelled context stops files not yet started.
func (m *Manager) LoadAll(ctx context.Context) error {
	return m.each(ctx, "load", (*config.File).Load)
}

// SaveAll saves every registered file.
func (m *Manager) SaveAll(ctx context.Context) error {
	return m.each(ctx, "save", (*config.File).Save)
}

func (m *Manager) each(ctx context.Context, what string, fn func(*config.File) error) error {
	names := m.Names()
	errs := make([]error, len(names))
	g, gctx := errgroup.WithContext(ctx)
	if m.limit > 0 {
		g.SetLimit(m.limit)
	}
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := m.timed(what, name, fn); err != nil {
				errs[i] = fmt.Errorf("%s %s: %w", what, name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	err := errors.Join(errs...)
	if err == nil {
		m.logger.Debug(what, "dir", m.dir, "files", len(names))
	}
	return err
}
