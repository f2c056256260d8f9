package main

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// sizeSource reports the terminal dimensions in cells.
type sizeSource func() (cols, rows int, err error)

func terminalSize(fd int) sizeSource {
	return func() (int, int, error) {
		return term.GetSize(fd)
	}
}

// resizeWatcher polls the terminal size and posts a layoutMsg to the main
// loop whenever it changes while the editor view is showing. It never
// touches the model directly.
type resizeWatcher struct {
	size     sizeSource
	mode     *modeFlag
	interval time.Duration
	post     func(tea.Msg)
	logger   *slog.Logger

	lastCols, lastRows int
}

func newResizeWatcher(size sizeSource, mode *modeFlag, interval time.Duration, post func(tea.Msg), logger *slog.Logger) *resizeWatcher {
	if interval <= 0 {
		interval = defaultResizeInterval
	}
	return &resizeWatcher{
		size:     size,
		mode:     mode,
		interval: interval,
		post:     post,
		logger:   logger,
	}
}

// Run polls until ctx is cancelled.
func (w *resizeWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		w.poll()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// poll checks the size once and reports whether a layoutMsg was posted.
// A change seen while a menu is open is picked up on the first poll after
// the menu closes.
func (w *resizeWatcher) poll() bool {
	if w.mode.Load() != ModeNormal {
		return false
	}
	cols, rows, err := w.size()
	if err != nil {
		w.logger.Debug("terminal size unavailable", "err", err)
		return false
	}
	if cols == w.lastCols && rows == w.lastRows {
		return false
	}
	w.lastCols, w.lastRows = cols, rows
	w.post(layoutMsg{cols: cols, rows: rows})
	return true
}
