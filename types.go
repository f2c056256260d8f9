package main

import (
	"log/slog"
	"sync/atomic"
)

type point struct {
	X, Y int
}

// modeFlag is the UI mode shared with the resize watcher. Only the main
// loop writes it.
type modeFlag struct {
	v atomic.Int32
}

func (f *modeFlag) Load() Mode {
	return Mode(f.v.Load())
}

func (f *modeFlag) Store(m Mode) {
	f.v.Store(int32(m))
}

// model is the editor session driven by bubbletea.
type model struct {
	canvas   *Canvas
	history  *History
	cursor   point
	brush    HSV
	mode     *modeFlag
	layout   layout
	filename string
	status   string
	config   *Config
	logger   *slog.Logger

	// copyText writes to the system clipboard; swapped out in tests.
	copyText func(string) error
	// saveFile encodes the canvas to disk; swapped out in tests.
	saveFile func(path string, c *Canvas) error
}

// layoutMsg is posted by the resize watcher when the terminal size changed.
type layoutMsg struct {
	cols, rows int
}
