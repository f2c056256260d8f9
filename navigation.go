package main

// wrap returns v modulo n in [0, n).
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

func (m *model) handleCursorMove(key string) bool {
	switch key {
	case "w", "up":
		m.cursor.Y = wrap(m.cursor.Y-1, m.canvas.Height())
	case "s", "down":
		m.cursor.Y = wrap(m.cursor.Y+1, m.canvas.Height())
	case "a", "left":
		m.cursor.X = wrap(m.cursor.X-1, m.canvas.Width())
	case "d", "right":
		m.cursor.X = wrap(m.cursor.X+1, m.canvas.Width())
	default:
		return false
	}
	return true
}

func (m *model) handleColorStep(key string) bool {
	switch key {
	case "u":
		m.brush = stepHue(m.brush, -hueStep)
	case "j":
		m.brush = stepHue(m.brush, hueStep)
	case "i":
		m.brush = stepSaturation(m.brush, -channelStep)
	case "k":
		m.brush = stepSaturation(m.brush, channelStep)
	case "o":
		m.brush = stepValue(m.brush, -channelStep)
	case "l":
		m.brush = stepValue(m.brush, channelStep)
	default:
		return false
	}
	return true
}
