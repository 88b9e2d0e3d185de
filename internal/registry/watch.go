package registry

import (
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"tally/internal/logging"
)

// Watch invokes onChange whenever the data file is created, written or
// renamed into place, so a running TUI can pick up edits made by another
// process (or a sync tool). The parent directory is watched rather than
// the file itself because Save replaces the file by rename. The returned
// closer stops the watcher.
//
// TODO: debounce onChange; editors that write-then-rename fire twice.
func Watch(path string, onChange func()) (io.Closer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	base := filepath.Base(path)
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					logging.L().Debug("data file changed", zap.String("op", ev.Op.String()))
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.L().Warn("watcher error", zap.Error(err))
			}
		}
	}()
	return watcher, nil
}
