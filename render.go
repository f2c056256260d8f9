package main

import (
	"fmt"
	"strings"
)

// drawOp is one positioned write: text at absolute 0-based (X, Y) over an
// optional background, with an optional foreground override.
type drawOp struct {
	X, Y        int
	Text        string
	Bg          Pixel
	Transparent bool
	Fg          Pixel
	HasFg       bool
}

// foreground resolves the text color. Light backgrounds get black text
// unless the op carries an explicit foreground.
func (op drawOp) foreground() (Pixel, bool) {
	if op.HasFg {
		return op.Fg, true
	}
	if !op.Transparent && op.Bg.Sum() > contrastThreshold {
		return textBlack, true
	}
	return Pixel{}, false
}

func cellOp(x, y int, bg Pixel, text string) drawOp {
	return drawOp{X: x, Y: y, Text: text, Bg: bg}
}

func textOp(x, y int, fg Pixel, text string) drawOp {
	return drawOp{X: x, Y: y, Text: text, Transparent: true, Fg: fg, HasFg: true}
}

// layout holds the screen geometry derived from the terminal size.
type layout struct {
	cols, rows int
	padX, padY int
}

func computeLayout(cols, rows, imageWidth int, responsive bool) layout {
	l := layout{cols: cols, rows: rows, padX: 1, padY: 1}
	if responsive {
		l.padX = max(0, (cols-max(minUIWidth, imageWidth*2))/2)
	}
	return l
}

// Selector geometry relative to the left padding.
const (
	selectorSection = 11
	selectorHeight  = 4
	hueColumn       = 1
	satColumn       = 13
	valColumn       = 25
	swatchColumn    = 37
	imageTop        = 5 // rows below padY
)

// frame is everything the renderer reads.
type frame struct {
	canvas   *Canvas
	cursor   point
	brush    HSV
	layout   layout
	filename string
	status   string
}

// renderEditor maps editor state to draw ops. It never mutates its input.
func renderEditor(f frame) []drawOp {
	ops := make([]drawOp, 0, f.canvas.width*f.canvas.height+64)
	px, py := f.layout.padX, f.layout.padY

	title := fmt.Sprintf("%s: %s (%dx%d)", appName, f.filename, f.canvas.width, f.canvas.height)
	ops = append(ops, textOp(px, py, highlightColor, title))

	ops = appendSelector(ops, f.brush, px, py+1)
	ops = appendImage(ops, f.canvas, f.cursor, px, py+imageTop)

	helpTop := py + imageTop + f.canvas.height + 2
	for i, line := range helpLines {
		ops = append(ops, textOp(px, helpTop+i, secondaryColor, line))
	}
	if f.status != "" {
		ops = append(ops, textOp(px, helpTop+len(helpLines), highlightColor, f.status))
	}
	return ops
}

func appendSelector(ops []drawOp, brush HSV, x, top int) []drawOp {
	section := strings.Repeat("─", selectorSection)
	blank := strings.Repeat(" ", selectorSection)
	sections := func(s string) []string { return []string{s, s, s, s} }

	ops = append(ops,
		textOp(x, top, edgeColor, "╭"+strings.Join(sections(section), "┬")+"╮"),
		textOp(x, top+1, edgeColor, "│"+strings.Join(sections(blank), "│")+"│"),
		textOp(x, top+2, edgeColor, "│"+strings.Join(sections(blank), "│")+"│"),
		textOp(x, top+selectorHeight-1, edgeColor, "╰"+strings.Join(sections(section), "┴")+"╯"),
	)

	labels := []string{"[u/j]: hue", "[i/k]: sat", "[o/l]: val", "current"}
	for i, label := range labels {
		ops = append(ops, textOp(x+1+i*(selectorSection+1), top+1, secondaryColor, label))
	}

	row := top + 2
	hueTick := int(brush.H) / hueStep
	satTick := int(brush.S) / channelStep
	valTick := int(brush.V) / channelStep
	for i := 0; i <= selectorTicks; i++ {
		ops = append(ops,
			cellOp(x+hueColumn+i, row, hsvToRGB(HSV{uint8(i * hueStep), channelMax, channelMax}), tick(i == hueTick)),
			cellOp(x+satColumn+i, row, hsvToRGB(HSV{brush.H, uint8(i * channelStep), brush.V}), tick(i == satTick)),
			cellOp(x+valColumn+i, row, hsvToRGB(HSV{brush.H, brush.S, uint8(i * channelStep)}), tick(i == valTick)),
		)
	}
	ops = append(ops, cellOp(x+swatchColumn, row, hsvToRGB(brush), blank))
	return ops
}

func tick(marked bool) string {
	if marked {
		return tickGlyph
	}
	return " "
}

func appendImage(ops []drawOp, c *Canvas, cursor point, x, top int) []drawOp {
	ops = append(ops, textOp(x, top, edgeColor, "╭"+strings.Repeat("─", c.width*2)+"╮"))
	side := "│" + strings.Repeat(" ", c.width*2) + "│"
	for y := 0; y < c.height; y++ {
		ops = append(ops, textOp(x, top+1+y, edgeColor, side))
	}
	ops = append(ops, textOp(x, top+1+c.height, edgeColor, "╰"+strings.Repeat("─", c.width*2)+"╯"))

	for y := 0; y < c.height; y++ {
		for cx := 0; cx < c.width; cx++ {
			text := cellGlyph
			if cx == cursor.X && y == cursor.Y {
				text = cursorGlyph
			}
			ops = append(ops, cellOp(x+1+cx*2, top+1+y, c.At(cx, y), text))
		}
	}
	return ops
}
