// Package diag carries recoverable conditions (skipped lines, unreadable
// files, type mismatches on read, failed declarations) out of the
// configuration core. Every condition is a subject, usually a file name,
// and a message.
package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
)

// Sink receives diagnostics.
type Sink interface {
	Emit(subject, msg string)
}

type SinkFunc func(subject, msg string)

func (f SinkFunc) Emit(subject, msg string) { f(subject, msg) }

// Emitf formats a message and emits it to s. A nil sink discards.
func Emitf(s Sink, subject, format string, args ...any) {
	if s == nil {
		return
	}
	s.Emit(subject, fmt.Sprintf(format, args...))
}

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(string, string) {})

type slogSink struct {
	logger *slog.Logger
}

// Slog logs diagnostics at warn level with the subject as an attribute.
func Slog(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogSink{logger: logger}
}

func (s *slogSink) Emit(subject, msg string) {
	s.logger.LogAttrs(context.Background(), slog.LevelWarn, msg, slog.String("subject", subject))
}

type console struct {
	mu     sync.Mutex
	w      io.Writer
	prefix string
	subj   func(string, ...any) string
}

// Console writes one line per diagnostic to w in the form
// "[keepconf] (subject) message", colored when useColor is set.
func Console(w io.Writer, useColor bool) Sink {
	c := &console{w: w}
	if useColor {
		grey := color.New(color.FgHiBlack).SprintFunc()
		c.prefix = grey("[") + color.YellowString("keepconf") + grey("]")
		c.subj = color.RGB(255, 170, 0).SprintfFunc()
	} else {
		c.prefix = "[keepconf]"
		c.subj = fmt.Sprintf
	}
	return c
}

func (c *console) Emit(subject, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "%s %s %s\n", c.prefix, c.subj("(%s)", subject), msg)
}

// Entry is one captured diagnostic.
type Entry struct {
	Subject string
	Msg     string
}

// Collector keeps every diagnostic it receives. It is safe for
// concurrent use.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
}

func (c *Collector) Emit(subject, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{Subject: subject, Msg: msg})
}

// Entries returns a copy of what has been collected so far.
func (c *Collector) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := make([]Entry, len(c.entries))
	copy(res, c.entries)
	return res
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

// Tee emits to each of sinks in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(subject, msg string) {
		for _, s := range sinks {
			if s != nil {
				s.Emit(subject, msg)
			}
		}
	})
}
