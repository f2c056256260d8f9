package main

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	hueMax      = 180 // 8-bit hue: degrees halved
	hueStep     = 18
	channelMax  = 255
	channelStep = 25

	// selectorTicks is the number of steps in each selector gradient.
	selectorTicks = 10
)

// HSV is the brush color. H is in [0,180], S and V in [0,255].
type HSV struct {
	H, S, V uint8
}

var defaultBrush = HSV{90, 125, 125}

// rgbToHSV converts using the 8-bit convention with hue halved to fit a byte.
func rgbToHSV(p Pixel) HSV {
	r, g, b := float64(p.R), float64(p.G), float64(p.B)
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	var h, s float64
	if maxC > 0 {
		s = diff * channelMax / maxC
	}
	if diff > 0 {
		switch maxC {
		case r:
			h = 60 * (g - b) / diff
		case g:
			h = 120 + 60*(b-r)/diff
		default:
			h = 240 + 60*(r-g)/diff
		}
		if h < 0 {
			h += 360
		}
	}

	return HSV{
		H: uint8(math.Round(h / 2)),
		S: uint8(math.Round(s)),
		V: uint8(maxC),
	}
}

func hsvToRGB(c HSV) Pixel {
	if c.S == 0 {
		return Pixel{c.V, c.V, c.V}
	}

	v := float64(c.V) / channelMax
	s := float64(c.S) / channelMax
	h := math.Mod(float64(c.H)*6/hueMax, 6)
	sector := math.Floor(h)
	f := h - sector

	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(sector) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return Pixel{unitToByte(r), unitToByte(g), unitToByte(b)}
}

func unitToByte(x float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, x)) * channelMax))
}

// stepChannel clamps value+delta to [0,max] and then floors it to a multiple of step.
func stepChannel(value uint8, delta, max, step int) uint8 {
	v := int(value) + delta
	if v < 0 {
		v = 0
	}
	if v > max {
		v = max
	}
	return uint8(v / step * step)
}

func stepHue(c HSV, delta int) HSV {
	c.H = stepChannel(c.H, delta, hueMax, hueStep)
	return c
}

func stepSaturation(c HSV, delta int) HSV {
	c.S = stepChannel(c.S, delta, channelMax, channelStep)
	return c
}

func stepValue(c HSV, delta int) HSV {
	c.V = stepChannel(c.V, delta, channelMax, channelStep)
	return c
}

// quantize snaps every channel onto its selector tick.
func quantize(c HSV) HSV {
	return stepValue(stepSaturation(stepHue(c, 0), 0), 0)
}

func hexOf(p Pixel) string {
	return colorful.Color{
		R: float64(p.R) / channelMax,
		G: float64(p.G) / channelMax,
		B: float64(p.B) / channelMax,
	}.Hex()
}
