package main

import "time"

type Mode int32

const (
	ModeNormal Mode = iota
	ModeFilterMenu
	ModeQuitMenu
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeFilterMenu:
		return "FILTER"
	case ModeQuitMenu:
		return "QUIT"
	default:
		return "UNKNOWN"
	}
}

const (
	appName = "CMDPXL"
	banner  = "CMDPXL - A TOTALLY PRACTICAL IMAGE EDITOR"

	defaultHistoryLimit   = 256
	defaultResizeInterval = 200 * time.Millisecond

	// minUIWidth is the width of the color selector box, the narrowest
	// the editor ever gets regardless of image width.
	minUIWidth = 48

	// contrastThreshold is the R+G+B sum above which text turns black.
	contrastThreshold = 350
)

// UI chrome colors.
var (
	highlightColor = Pixel{214, 39, 112}
	secondaryColor = Pixel{53, 204, 242}
	edgeColor      = Pixel{200, 200, 200}
	textBlack      = Pixel{0, 0, 0}
)

const (
	cursorGlyph = "[]"
	cellGlyph   = "  "
	tickGlyph   = "●"
)

var helpLines = []string{
	"[wasd] move │ [e] draw    │ [f] fill",
	"[z] undo    │ [t] filters │ [esc] quit",
	"[p] pick    │ [c] copy    │",
}
