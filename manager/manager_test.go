package manager

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/signadot/keepconf/config"
	"github.com/signadot/keepconf/diag"
	"github.com/signadot/keepconf/merge"
)

func quiet() []Option {
	return []Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithSink(diag.Discard),
	}
}

func declarePort(d *config.Declaration) {
	d.AddScalar("server.port", "", 8080)
}

func TestNewCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	m, err := New(dir, quiet()...)
	if err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !fi.IsDir() {
		t.Fatalf("%s is not a directory", dir)
	}
	if m.Dir() != dir {
		t.Errorf("Dir() = %q", m.Dir())
	}
}

func TestNewFailure(t *testing.T) {
	p := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(p, nil, 0644); err != nil {
		t.Fatal(err)
	}
	c := &diag.Collector{}
	_, err := New(filepath.Join(p, "sub"), WithSink(c))
	if !errors.Is(err, ErrDir) {
		t.Fatalf("got %v, want ErrDir", err)
	}
	if c.Len() != 1 {
		t.Errorf("got %d diagnostics, want 1", c.Len())
	}
}

func TestRegister(t *testing.T) {
	m, err := New(t.TempDir(), quiet()...)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.NewFile("b.conf", merge.Closed, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := m.NewFile("a.conf", merge.Open, declarePort); err != nil {
		t.Fatal(err)
	}
	if _, err := m.NewFile("a.conf", merge.Open, nil); !errors.Is(err, ErrDuplicate) {
		t.Errorf("got %v, want ErrDuplicate", err)
	}
	for _, name := range []string{"", "x/y.conf", ".."} {
		if _, err := m.NewFile(name, merge.Open, nil); !errors.Is(err, ErrBadName) {
			t.Errorf("%q: got %v, want ErrBadName", name, err)
		}
	}
	if diff := cmp.Diff([]string{"a.conf", "b.conf"}, m.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	f := m.Get("a.conf")
	if f == nil {
		t.Fatal("a.conf not registered")
	}
	if f.Path() != filepath.Join(m.Dir(), "a.conf") {
		t.Errorf("path %q", f.Path())
	}
	if m.Get("c.conf") != nil {
		t.Error("got unregistered file")
	}
	if err := m.Reload("c.conf"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	m, err := New(dir, quiet()...)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.conf"), []byte("server:\n  port: 9090\n"), 0644); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.conf", "b.conf", "c.conf"} {
		if _, err := m.NewFile(name, merge.Closed, declarePort); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.LoadAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := map[string]int32{"a.conf": 8080, "b.conf": 9090, "c.conf": 8080}
	for name, port := range want {
		err := m.Do(name, func(f *config.File) error {
			if got, ok := f.GetInt("server.port"); !ok || got != port {
				t.Errorf("%s: port %d, %v; want %d", name, got, ok, port)
			}
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	d, err := os.ReadFile(filepath.Join(dir, "a.conf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "server:\n  port: 8080" {
		t.Errorf("created %q", d)
	}
}

func TestLoadAllJoinsErrors(t *testing.T) {
	dir := t.TempDir()
	m, err := New(dir, quiet()...)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"x.conf", "y.conf"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0755); err != nil {
			t.Fatal(err)
		}
		if _, err := m.NewFile(name, merge.Closed, declarePort); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := m.NewFile("z.conf", merge.Closed, declarePort); err != nil {
		t.Fatal(err)
	}
	err = m.LoadAll(context.Background())
	if !errors.Is(err, config.ErrLoad) {
		t.Fatalf("got %v, want ErrLoad", err)
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Errorf("want 2 joined errors, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "z.conf")); err != nil {
		t.Errorf("z.conf not created: %v", err)
	}
}

func TestLoadAllCancelled(t *testing.T) {
	dir := t.TempDir()
	m, err := New(dir, append(quiet(), WithConcurrency(1))...)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.NewFile("a.conf", merge.Closed, declarePort); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.LoadAll(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.conf")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("a.conf written after cancel: %v", err)
	}
}

func TestSaveAll(t *testing.T) {
	dir := t.TempDir()
	m, err := New(dir, quiet()...)
	if err != nil {
		t.Fatal(err)
	}
	f, err := m.NewFile("a.conf", merge.Open, declarePort)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Set("server.port", 1234); err != nil {
		t.Fatal(err)
	}
	if err := m.SaveAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(filepath.Join(dir, "a.conf"))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "server:\n  port: 1234" {
		t.Errorf("saved %q", d)
	}
}

func TestMetrics(t *testing.T) {
	m, err := New(t.TempDir(), quiet()...)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.NewFile("a.conf", merge.Closed, declarePort); err != nil {
		t.Fatal(err)
	}
	ok := fileOpTotal.WithLabelValues("save", "ok")
	before := testutil.ToFloat64(ok)
	if err := m.SaveAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(ok) - before; got != 1 {
		t.Errorf("save ok counted %v times, want 1", got)
	}
}
