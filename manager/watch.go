package manager

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/signadot/keepconf/debug"
)

// ReloadFunc is called after Watch reloads a file. err is the result of
// the reload.
type ReloadFunc func(name string, err error)

// Watcher reloads registered files when they change on disk.
type Watcher struct {
	m        *Manager
	fsw      *fsnotify.Watcher
	onReload ReloadFunc

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Watch starts watching the manager's directory. Changes to a registered
// file are collected until none has arrived for the debounce window,
// then each changed file is reloaded once. Watching ends when ctx is
// done or Stop is called.
func (m *Manager) Watch(ctx context.Context, onReload ReloadFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(m.dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("%w: watch %s: %w", ErrDir, m.dir, err)
	}
	w := &Watcher{
		m:        m,
		fsw:      fsw,
		onReload: onReload,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run(ctx)
	return w, nil
}

// Stop ends watching and waits for a reload in progress to finish.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	<-w.done
}

// Done is closed once the watcher has stopped.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer w.fsw.Close()

	pending := map[string]struct{}{}
	var timerC <-chan time.Time
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			name, ok := w.relevant(ev)
			if !ok {
				continue
			}
			if debug.Watch() {
				debug.Logf("watch %s %s\n", ev.Op, name)
			}
			pending[name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.m.debounce)
			} else {
				timer.Reset(w.m.debounce)
			}
			timerC = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.m.logger.Warn("watch", "dir", w.m.dir, "error", err)
		case <-timerC:
			timerC = nil
			for _, name := range w.m.Names() {
				if _, ok := pending[name]; !ok {
					continue
				}
				delete(pending, name)
				err := w.m.Reload(name)
				w.m.logger.Debug("reloaded", "file", name, "error", err)
				if w.onReload != nil {
					w.onReload(name, err)
				}
			}
			clear(pending)
		}
	}
}

// relevant returns the registered name an event is about. Removals are
// ignored; a file replaced by rename shows up as a create of its name.
func (w *Watcher) relevant(ev fsnotify.Event) (string, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return "", false
	}
	name := filepath.Base(ev.Name)
	if strings.HasSuffix(name, ".tmp") {
		return "", false
	}
	if w.m.entry(name) == nil {
		return "", false
	}
	return name, true
}
