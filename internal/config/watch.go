package config

import (
	"path/filepath"
	"time"

	fsnotify "github.com/fsnotify/fsnotify"
)

// debounce window for editors that write config files in several events
const watchSettle = 120 * time.Millisecond

// Watch invokes fn whenever the file at path changes. The parent
// directory is watched so the callback also fires when the file is
// created or replaced by rename. The returned stop func releases the
// watcher.
func Watch(path string, fn func()) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}
	target := filepath.Clean(path)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				time.Sleep(watchSettle)
				drain(w.Events)
				fn()
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return func() { _ = w.Close() }, nil
}

func drain(ch <-chan fsnotify.Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
