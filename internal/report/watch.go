package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Wait blocks until report-task.txt exists in workDir, then loads it.
// The scanner writes the descriptor at the very end of its run, so a
// caller started alongside the scanner may arrive before the file does.
// A timeout of 0 waits until ctx is cancelled.
func Wait(ctx context.Context, workDir string, timeout time.Duration) (*Report, error) {
	path := filepath.Join(workDir, FileName)
	if _, err := os.Stat(path); err == nil {
		return Load(workDir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(workDir); err != nil {
		return nil, fmt.Errorf("watch %s: %w", workDir, err)
	}

	// The file may have shown up between the Stat and the Add.
	if _, err := os.Stat(path); err == nil {
		return Load(workDir)
	}

	var timeoutC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil, errors.New("watcher closed")
			}
			if filepath.Clean(ev.Name) == filepath.Clean(path) && ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				return Load(workDir)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil, errors.New("watcher closed")
			}
			return nil, fmt.Errorf("watch %s: %w", workDir, werr)
		case <-timeoutC:
			return nil, fmt.Errorf("no %s appeared in %s within %s", FileName, workDir, timeout)
		case <-ctx.Done():
			return nil, fmt.Errorf("interrupted while waiting for %s: %w", FileName, ctx.Err())
		}
	}
}
