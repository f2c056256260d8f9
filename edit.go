package main

// Every mutating action snapshots the canvas first so undo restores the
// exact pre-action state.

func (m *model) paint() {
	m.history.Push(m.canvas)
	m.canvas.Set(m.cursor.X, m.cursor.Y, hsvToRGB(m.brush))
}

func (m *model) fill() {
	m.history.Push(m.canvas)
	floodFill(m.canvas, m.cursor, hsvToRGB(m.brush))
}

func (m *model) applyFilter(f filterEntry) {
	m.history.Push(m.canvas)
	m.canvas = m.canvas.ApplyFilter(f.Kind)
	m.logger.Info("filter applied", "filter", f.Name)
}

func (m *model) undo() {
	prev, ok := m.history.Pop()
	if !ok {
		return
	}
	m.canvas = prev
	m.logger.Debug("undo", "remaining", m.history.Len())
}

// pickColor loads the pixel under the cursor into the brush, snapped to
// the selector ticks.
func (m *model) pickColor() {
	m.brush = quantize(rgbToHSV(m.canvas.At(m.cursor.X, m.cursor.Y)))
}

func (m *model) copyPixel() {
	hex := hexOf(m.canvas.At(m.cursor.X, m.cursor.Y))
	if err := m.copyText(hex); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
		m.status = "clipboard unavailable"
		return
	}
	m.status = "copied " + hex
}
