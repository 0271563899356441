package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Update is one reload of a watched file. Err is set when the new contents
// could not be loaded; the previous configuration stays in effect.
type Update struct {
	Config *Config
	Err    error
}

// Watch reloads path whenever it is written and sends the result on the
// returned channel. The parent directory is watched so editors that replace
// the file on save are followed. The channel is closed when ctx is done.
func Watch(ctx context.Context, path string) (<-chan Update, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %q: %w", filepath.Dir(absPath), err)
	}

	updates := make(chan Update)
	go func() {
		defer close(updates)
		defer func() {
			if err := watcher.Close(); err != nil {
				slog.Debug("close config watcher", slog.Any("err", err))
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != absPath {
					continue
				}
				if evt.Has(fsnotify.Chmod) || evt.Has(fsnotify.Remove) || evt.Has(fsnotify.Rename) {
					continue
				}
				slog.Debug("config changed", slog.String("path", absPath), slog.String("op", evt.Op.String()))

				cfg, err := Load(absPath)
				select {
				case updates <- Update{Config: cfg, Err: err}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case updates <- Update{Err: fmt.Errorf("watch config: %w", err)}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates, nil
}
