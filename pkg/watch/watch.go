// Package watch re-runs the lint pass when JavaScript sources change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	errs "github.com/frontkit/js-imports-order/pkg/errors"
	"github.com/frontkit/js-imports-order/pkg/utils"
)

// debounce coalesces bursts of filesystem events (editors often write a
// file several times per save) into one lint pass.
const debounce = 250 * time.Millisecond

// Run watches root and invokes onChange after JavaScript files change.
// Blocks until ctx is cancelled.
func Run(ctx context.Context, root string, extensions []string, log *slog.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: %w", errs.ErrMsgFailedToCreateWatcher, err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addTarget(watcher, root); err != nil {
		return fmt.Errorf("%s: %w", errs.ErrMsgFailedToWatchPath, err)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if isDir, err := utils.IsDirectory(event.Name); err == nil && isDir {
					_ = addDirs(watcher, event.Name)
					continue
				}
			}
			if !utils.IsJSFile(filepath.Base(event.Name), extensions) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			log.Debug("change detected", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case <-timer.C:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "err", err)
		}
	}
}

// addTarget registers root with the watcher. A single file is watched
// through its parent directory, which survives editor rename-on-save.
func addTarget(watcher *fsnotify.Watcher, root string) error {
	isDir, err := utils.IsDirectory(root)
	if err != nil {
		return err
	}
	if !isDir {
		return watcher.Add(filepath.Dir(root))
	}
	return addDirs(watcher, root)
}

// addDirs registers a directory tree, skipping dependency and hidden
// directories.
func addDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root {
			name := filepath.Base(path)
			if name == "node_modules" || name == ".git" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
		}
		return watcher.Add(path)
	})
}
