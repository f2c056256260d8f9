package main

import "math"

type FilterKind int

const (
	FilterGrayscale FilterKind = iota
	FilterSepia
	FilterOcean
	FilterHeatmap
	FilterInvert
	FilterBlur
)

type filterEntry struct {
	Key  string
	Name string
	Kind FilterKind
}

// filterMenu lists the filters in the order the menu shows them.
var filterMenu = []filterEntry{
	{"G", "Grayscale", FilterGrayscale},
	{"S", "Sepia", FilterSepia},
	{"O", "Ocean", FilterOcean},
	{"H", "Heatmap", FilterHeatmap},
	{"I", "Invert", FilterInvert},
	{"B", "Blur", FilterBlur},
}

func filterForKey(key string) (filterEntry, bool) {
	for _, f := range filterMenu {
		if f.Key == key {
			return f, true
		}
	}
	return filterEntry{}, false
}

func (k FilterKind) String() string {
	for _, f := range filterMenu {
		if f.Kind == k {
			return f.Name
		}
	}
	return "Unknown"
}

type palette [256]Pixel

var palettes = map[FilterKind]*palette{
	FilterGrayscale: buildPalette(bone),
	FilterSepia:     buildPalette(pink),
	FilterOcean:     buildPalette(ocean),
	FilterHeatmap:   buildPalette(jet),
}

func buildPalette(fn func(t float64) (r, g, b float64)) *palette {
	var p palette
	for i := range p {
		r, g, b := fn(float64(i) / 255)
		p[i] = Pixel{unitToByte(r), unitToByte(g), unitToByte(b)}
	}
	return &p
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// hot is the black-red-yellow-white ramp the bone and pink maps mix with gray.
func hot(t float64) (r, g, b float64) {
	return clamp01(t * 8 / 3), clamp01(t*8/3 - 1), clamp01(4*t - 3)
}

func bone(t float64) (r, g, b float64) {
	hr, hg, hb := hot(t)
	return (7*t + hb) / 8, (7*t + hg) / 8, (7*t + hr) / 8
}

func pink(t float64) (r, g, b float64) {
	hr, hg, hb := hot(t)
	return math.Sqrt((2*t + hr) / 3), math.Sqrt((2*t + hg) / 3), math.Sqrt((2*t + hb) / 3)
}

func ocean(t float64) (r, g, b float64) {
	return clamp01(3*t - 2), clamp01(math.Abs((3*t - 1) / 2)), t
}

func jet(t float64) (r, g, b float64) {
	return clamp01(1.5 - math.Abs(4*t-3)), clamp01(1.5 - math.Abs(4*t-2)), clamp01(1.5 - math.Abs(4*t-1))
}

// luminance is the fixed-point Rec.601 gray level.
func luminance(p Pixel) uint8 {
	return uint8((4899*int(p.R) + 9617*int(p.G) + 1868*int(p.B) + 8192) >> 14)
}

// ApplyFilter returns a filtered copy; c is left untouched.
func (c *Canvas) ApplyFilter(kind FilterKind) *Canvas {
	out := c.Clone()
	switch kind {
	case FilterInvert:
		for i, p := range c.pixels {
			out.pixels[i] = Pixel{255 - p.R, 255 - p.G, 255 - p.B}
		}
	case FilterBlur:
		for y := 0; y < c.height; y++ {
			above := y - 1
			if above < 0 {
				above = min(1, c.height-1)
			}
			for x := 0; x < c.width; x++ {
				a, b := c.At(x, above), c.At(x, y)
				out.Set(x, y, Pixel{avg(a.R, b.R), avg(a.G, b.G), avg(a.B, b.B)})
			}
		}
	default:
		lut, ok := palettes[kind]
		if !ok {
			return out
		}
		for i, p := range c.pixels {
			out.pixels[i] = lut[luminance(p)]
		}
	}
	return out
}

func avg(a, b uint8) uint8 {
	return uint8((int(a) + int(b) + 1) / 2)
}
