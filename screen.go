package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// screenCell is one terminal cell after all draw ops have been applied.
type screenCell struct {
	r      rune
	bg, fg Pixel
	hasBg  bool
	hasFg  bool
	wide   bool // right half of a double-width rune
}

func (c screenCell) sameStyle(o screenCell) bool {
	return c.hasBg == o.hasBg && c.hasFg == o.hasFg &&
		(!c.hasBg || c.bg == o.bg) && (!c.hasFg || c.fg == o.fg)
}

type screen struct {
	cols, rows int
	cells      [][]screenCell
}

// Ambiguous-width glyphs (box drawing, the tick dot) are one cell wide
// regardless of locale.
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

func newScreen(cols, rows int) *screen {
	s := &screen{cols: cols, rows: rows, cells: make([][]screenCell, rows)}
	for y := range s.cells {
		row := make([]screenCell, cols)
		for x := range row {
			row[x].r = ' '
		}
		s.cells[y] = row
	}
	return s
}

func (s *screen) put(x, y int, c screenCell) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	s.cells[y][x] = c
}

// At returns the cell at (x, y); out-of-range reads return a blank cell.
func (s *screen) At(x, y int) screenCell {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return screenCell{r: ' '}
	}
	return s.cells[y][x]
}

// Row returns the plain text of row y.
func (s *screen) Row(y int) string {
	if y < 0 || y >= s.rows {
		return ""
	}
	var b strings.Builder
	for _, c := range s.cells[y] {
		if !c.wide {
			b.WriteRune(c.r)
		}
	}
	return b.String()
}

// opsExtent is the smallest screen that holds every op.
func opsExtent(ops []drawOp) (cols, rows int) {
	for _, op := range ops {
		cols = max(cols, op.X+cellWidth.StringWidth(op.Text))
		rows = max(rows, op.Y+1)
	}
	return cols, rows
}

// rasterize applies ops in order onto a cols x rows grid, clipping anything
// outside. Non-positive dimensions size the grid to fit the ops.
func rasterize(ops []drawOp, cols, rows int) *screen {
	if cols <= 0 || rows <= 0 {
		cols, rows = opsExtent(ops)
	}
	s := newScreen(cols, rows)
	for _, op := range ops {
		fg, hasFg := op.foreground()
		x := op.X
		for _, r := range op.Text {
			w := cellWidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			cell := screenCell{r: r, bg: op.Bg, hasBg: !op.Transparent, fg: fg, hasFg: hasFg}
			s.put(x, op.Y, cell)
			if w == 2 {
				cell.wide = true
				s.put(x+1, op.Y, cell)
			}
			x += w
		}
	}
	return s
}

func styleFor(c screenCell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.hasBg {
		st = st.Background(lipgloss.Color(hexOf(c.bg)))
	}
	if c.hasFg {
		st = st.Foreground(lipgloss.Color(hexOf(c.fg)))
	}
	return st
}

// String renders the grid, one styled run per stretch of equal style.
func (s *screen) String() string {
	lines := make([]string, s.rows)
	for y, row := range s.cells {
		var line strings.Builder
		var run strings.Builder
		var runCell screenCell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runCell.hasBg || runCell.hasFg {
				line.WriteString(styleFor(runCell).Render(run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		for x, c := range row {
			if c.wide {
				continue
			}
			if x > 0 && !c.sameStyle(runCell) {
				flush()
			}
			if run.Len() == 0 {
				runCell = c
			}
			run.WriteRune(c.r)
		}
		flush()
		lines[y] = strings.TrimRight(line.String(), " ")
	}
	return strings.Join(lines, "\n")
}
