package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/signadot/keepconf/diag"
	"github.com/signadot/keepconf/encode"
	"github.com/signadot/keepconf/libdiff"
	"github.com/signadot/keepconf/merge"
	"github.com/signadot/keepconf/node"
	"github.com/signadot/keepconf/parse"
)

// File is a configuration file and the tree that holds its content. The
// tree starts out as what the declaration step builds and is kept
// current by Load.
//
// A File is not safe for concurrent use.
type File struct {
	name   string
	path   string
	policy merge.Policy
	root   *node.Node
	sink   diag.Sink
	logger *slog.Logger
	perm   os.FileMode
	last   *merge.Result
}

// New makes a file at path. declare, if not nil, is called once to build
// the default tree before New returns.
func New(path string, policy merge.Policy, declare func(*Declaration), opts ...Option) *File {
	f := &File{
		name:   filepath.Base(path),
		path:   path,
		policy: policy,
		root:   node.NewRoot(),
		perm:   0644,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}
	if f.sink == nil {
		f.sink = diag.Slog(f.logger)
	}
	if declare != nil {
		declare(&Declaration{f: f})
	}
	f.root.HoistBlanks()
	return f
}

func (f *File) Name() string { return f.name }
func (f *File) Path() string { return f.path }
func (f *File) Policy() merge.Policy { return f.policy }
func (f *File) Root() *node.Node { return f.root }
func (f *File) Sink() diag.Sink { return f.sink }
func (f *File) Logger() *slog.Logger { return f.logger }
func (f *File) LastLoad() *merge.Result { return f.last }

func (f *File) emitf(format string, args ...any) {
	diag.Emitf(f.sink, f.name, format, args...)
}

// Load reads the file and reconciles it into the tree. A missing file is
// written out with the current tree. When the file cannot be read or
// parsed the tree is left as it was.
func (f *File) Load() error {
	d, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return f.create()
	}
	if err != nil {
		f.emitf("unable to read %s: %v", f.path, err)
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return f.load(d)
}

// Reload is Load.
func (f *File) Reload() error {
	return f.Load()
}

// LoadFrom reconciles the content of r into the tree as if it had been
// read from the file.
func (f *File) LoadFrom(r io.Reader) error {
	d, err := io.ReadAll(r)
	if err != nil {
		f.emitf("unable to read: %v", err)
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return f.load(d)
}

func (f *File) load(d []byte) error {
	disk, err := parse.Parse(d, parse.ParseFilename(f.name), parse.ParseSink(f.sink))
	if err != nil {
		f.emitf("unable to parse: %v", err)
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	f.root.HoistBlanks()
	res := merge.Reconcile(disk, f.root, f.policy)
	for _, p := range res.Conflicts {
		f.emitf("%s has a different kind on disk than declared; keeping the declaration", p)
	}
	f.last = res
	f.logger.Debug("loaded", "file", f.name, "policy", f.policy,
		"updated", len(res.Updated), "added", len(res.Added), "lines", res.Lines)
	return nil
}

func (f *File) create() error {
	if err := f.Save(); err != nil {
		return err
	}
	f.logger.Info("created", "file", f.name)
	return nil
}

// Save writes the tree to the file, replacing it in one step.
func (f *File) Save() error {
	s, err := encode.String(f.root)
	if err != nil {
		f.emitf("unable to render: %v", err)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	if err := WriteFile(f.path, []byte(s), f.perm); err != nil {
		f.emitf("unable to save %s: %v", f.path, err)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	f.logger.Debug("saved", "file", f.name)
	return nil
}

// WriteFile writes d to a temporary file next to p and renames it over
// p.
func WriteFile(p string, d []byte, perm os.FileMode) error {
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, d, perm); err != nil {
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Render returns the text Save would write.
func (f *File) Render() string {
	s, _ := encode.String(f.root)
	return s
}

// Diff compares the file on disk with what Save would write. A missing
// file compares as empty.
func (f *File) Diff() ([]libdiff.Line, error) {
	d, err := os.ReadFile(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return libdiff.Lines(string(d), f.Render()), nil
}

// Section returns the section at the dotted path.
func (f *File) Section(path string) *node.Node {
	if path == "" {
		return nil
	}
	return f.root.Section(path)
}

// Get returns the keyed node at the dotted path.
func (f *File) Get(path string) *node.Node {
	return f.root.Child(path)
}
