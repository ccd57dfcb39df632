package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/uifx"
)

// Watcher reloads a config file when it changes on disk.
//
// It watches the file's directory rather than the file itself so editors
// that save by writing a temporary file and renaming it over the original
// keep triggering reloads.
type Watcher struct {
	path string
	fs   *fsnotify.Watcher
}

// NewWatcher starts watching the directory containing path. Changes made
// after NewWatcher returns are reported by Run.
func NewWatcher(path string) (*Watcher, error) {
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	path = filepath.Clean(path)
	if err := fs.Add(filepath.Dir(path)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	return &Watcher{path: path, fs: fs}, nil
}

// Run calls fn with the freshly loaded config every time the file is
// written or created, until ctx is done or Close is called. A file that
// fails to load is logged and skipped; fn is not called for it.
//
// Run returns ctx.Err() when ctx ends and nil after Close.
func (w *Watcher) Run(ctx context.Context, fn func(Config)) error {
	log := uifx.Logger().With("path", w.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				log.Warn("config: reload failed, keeping previous settings", "error", err)
				continue
			}
			log.Info("config: reloaded", "op", ev.Op.String())
			fn(cfg)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Warn("config: watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Watch watches path and calls fn on every successful reload until ctx is
// done. See Watcher.Run.
func Watch(ctx context.Context, path string, fn func(Config)) error {
	w, err := NewWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Run(ctx, fn)
}
