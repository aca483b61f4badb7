package diag

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCollector(t *testing.T) {
	c := &Collector{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Emitf(c, "f", "line %d", 1)
		}()
	}
	wg.Wait()
	if got := c.Len(); got != 8 {
		t.Errorf("Len() = %d, want 8", got)
	}
	c.Reset()
	if got := c.Entries(); len(got) != 0 {
		t.Errorf("after reset: %v", got)
	}
}

func TestConsole(t *testing.T) {
	buf := &bytes.Buffer{}
	s := Console(buf, false)
	s.Emit("app.conf", "bad indentation")
	if got, want := buf.String(), "[keepconf] (app.conf) bad indentation\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSlog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	Slog(logger).Emit("app.conf", "unreadable")
	out := buf.String()
	for _, want := range []string{"level=WARN", "msg=unreadable", "subject=app.conf"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q lacks %q", out, want)
		}
	}
}

func TestTee(t *testing.T) {
	a, b := &Collector{}, &Collector{}
	Tee(a, nil, b).Emit("s", "m")
	want := []Entry{{Subject: "s", Msg: "m"}}
	if diff := cmp.Diff(want, a.Entries()); diff != "" {
		t.Errorf("a (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, b.Entries()); diff != "" {
		t.Errorf("b (-want +got):\n%s", diff)
	}
	Emitf(nil, "s", "ignored")
	Discard.Emit("s", "ignored")
}
