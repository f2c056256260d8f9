package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(hexOf(highlightColor)))
	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(hexOf(secondaryColor)))
	menuErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(hexOf(highlightColor)))
	menuBoxStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

func (m model) View() string {
	switch m.mode.Load() {
	case ModeFilterMenu:
		return m.filterMenuView()
	case ModeQuitMenu:
		return m.quitMenuView()
	}
	return rasterize(renderEditor(m.frame()), m.layout.cols, m.layout.rows).String()
}

func (m model) frame() frame {
	return frame{
		canvas:   m.canvas,
		cursor:   m.cursor,
		brush:    m.brush,
		layout:   m.layout,
		filename: m.filename,
		status:   m.status,
	}
}

func (m model) filterMenuView() string {
	lines := []string{
		menuTitleStyle.Render("APPLY FILTER"),
		"",
		menuItemStyle.Render("[esc]: Return"),
		"",
	}
	for _, f := range filterMenu {
		lines = append(lines, menuItemStyle.Render(fmt.Sprintf("[%s]: %s", f.Key, f.Name)))
	}
	return menuBoxStyle.Render(strings.Join(lines, "\n"))
}

func (m model) quitMenuView() string {
	lines := []string{
		menuTitleStyle.Render("QUIT"),
		"",
		menuItemStyle.Render("[S]: Save and exit"),
		menuItemStyle.Render("[Q]: Quit without saving"),
		"",
		menuItemStyle.Render("[esc]: Cancel"),
	}
	if m.status != "" {
		lines = append(lines, "", menuErrorStyle.Render(m.status))
	}
	return menuBoxStyle.Render(strings.Join(lines, "\n"))
}
