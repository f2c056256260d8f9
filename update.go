package main

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func newModel(c *Canvas, filename string, cfg *Config, logger *slog.Logger) model {
	return model{
		canvas:   c,
		history:  NewHistory(cfg.HistoryLimit),
		brush:    cfg.startBrush(),
		mode:     &modeFlag{},
		layout:   computeLayout(0, 0, c.Width(), cfg.ResponsivePadding),
		filename: filename,
		config:   cfg,
		logger:   logger,
		copyText: writeClipboardText,
		saveFile: saveCanvas,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case layoutMsg:
		m.layout = computeLayout(msg.cols, msg.rows, m.canvas.Width(), m.config.ResponsivePadding)
		m.logger.Debug("layout changed", "cols", msg.cols, "rows", msg.rows, "pad_x", m.layout.padX)
		if m.mode.Load() != ModeNormal {
			return m, nil
		}
		return m, tea.ClearScreen

	case tea.WindowSizeMsg:
		// Layout follows the resize watcher only, so a menu is never
		// repainted underneath the user.
		return m, nil

	case tea.KeyMsg:
		switch m.mode.Load() {
		case ModeFilterMenu:
			return m.updateFilterMenu(msg)
		case ModeQuitMenu:
			return m.updateQuitMenu(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.status = ""

	if m.handleCursorMove(key) || m.handleColorStep(key) {
		return m, nil
	}

	switch key {
	case "e", " ":
		m.paint()
	case "f":
		m.fill()
	case "z":
		m.undo()
	case "p":
		m.pickColor()
	case "c":
		m.copyPixel()
	case "t":
		return m.enterMenu(ModeFilterMenu)
	case "esc", "ctrl+c":
		return m.enterMenu(ModeQuitMenu)
	}
	return m, nil
}

func (m model) updateFilterMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return m.leaveMenu()
	}
	entry, ok := filterForKey(strings.ToUpper(msg.String()))
	if !ok {
		return m, nil
	}
	m.applyFilter(entry)
	return m.leaveMenu()
}

func (m model) updateQuitMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return m.leaveMenu()
	}
	switch strings.ToLower(msg.String()) {
	case "s":
		if err := m.saveFile(m.filename, m.canvas); err != nil {
			m.logger.Error("save failed", "file", m.filename, "err", err)
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		m.logger.Info("saved", "file", m.filename)
		return m, tea.Quit
	case "q":
		m.logger.Info("quit without saving", "file", m.filename)
		return m, tea.Quit
	}
	return m, nil
}

// enterMenu hands the whole screen to a menu. The resize watcher stops
// repainting as soon as the mode flag changes.
func (m model) enterMenu(mode Mode) (tea.Model, tea.Cmd) {
	m.mode.Store(mode)
	return m, tea.Batch(tea.ClearScreen, tea.ShowCursor)
}

func (m model) leaveMenu() (tea.Model, tea.Cmd) {
	m.mode.Store(ModeNormal)
	m.status = ""
	return m, tea.Batch(tea.ClearScreen, tea.HideCursor)
}
