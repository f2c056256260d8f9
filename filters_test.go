package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMenu_Keys(t *testing.T) {
	var keys, names []string
	for _, f := range filterMenu {
		keys = append(keys, f.Key)
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"G", "S", "O", "H", "I", "B"}, keys)
	assert.Equal(t, []string{"Grayscale", "Sepia", "Ocean", "Heatmap", "Invert", "Blur"}, names)

	f, ok := filterForKey("H")
	require.True(t, ok)
	assert.Equal(t, FilterHeatmap, f.Kind)
	assert.Equal(t, "Heatmap", f.Kind.String())

	_, ok = filterForKey("X")
	assert.False(t, ok)
	_, ok = filterForKey("g")
	assert.False(t, ok, "lookup is by upper-case key")
}

func TestApplyFilter_Invert(t *testing.T) {
	c, err := NewCanvas(1, 1, Pixel{10, 20, 30})
	require.NoError(t, err)

	out := c.ApplyFilter(FilterInvert)
	assert.Equal(t, Pixel{245, 235, 225}, out.At(0, 0))
	assert.True(t, out.ApplyFilter(FilterInvert).Equal(c))
}

func TestApplyFilter_LeavesInputUntouched(t *testing.T) {
	c, err := NewCanvas(3, 2, blankPixel)
	require.NoError(t, err)
	c.Set(1, 1, Pixel{12, 200, 40})
	before := c.Clone()

	for _, f := range filterMenu {
		out := c.ApplyFilter(f.Kind)
		assert.Equal(t, c.Width(), out.Width(), f.Name)
		assert.Equal(t, c.Height(), out.Height(), f.Name)
		assert.True(t, c.Equal(before), "%s mutated its input", f.Name)
	}
}

func TestApplyFilter_PaletteEndpoints(t *testing.T) {
	c, err := NewCanvas(2, 1, Pixel{})
	require.NoError(t, err)
	c.Set(1, 0, Pixel{255, 255, 255})

	gray := c.ApplyFilter(FilterGrayscale)
	assert.Equal(t, Pixel{0, 0, 0}, gray.At(0, 0))
	assert.Equal(t, Pixel{255, 255, 255}, gray.At(1, 0))

	heat := c.ApplyFilter(FilterHeatmap)
	assert.Equal(t, Pixel{0, 0, 128}, heat.At(0, 0))
	assert.Equal(t, Pixel{128, 0, 0}, heat.At(1, 0))
}

func TestApplyFilter_PalettesDependOnLuminanceOnly(t *testing.T) {
	// Same luminance, different hues.
	a, b := Pixel{255, 0, 0}, Pixel{0, 129, 0}
	require.Equal(t, luminance(a), luminance(b))

	c, err := NewCanvas(2, 1, a)
	require.NoError(t, err)
	c.Set(1, 0, b)

	for _, kind := range []FilterKind{FilterGrayscale, FilterSepia, FilterOcean, FilterHeatmap} {
		out := c.ApplyFilter(kind)
		assert.Equal(t, out.At(0, 0), out.At(1, 0), kind.String())
	}
}

func TestLuminance(t *testing.T) {
	assert.Equal(t, uint8(0), luminance(Pixel{}))
	assert.Equal(t, uint8(255), luminance(Pixel{255, 255, 255}))
	assert.Equal(t, uint8(76), luminance(Pixel{255, 0, 0}))
}

func TestApplyFilter_Blur(t *testing.T) {
	c, err := NewCanvas(1, 3, Pixel{})
	require.NoError(t, err)
	c.Set(0, 1, Pixel{255, 255, 255})

	out := c.ApplyFilter(FilterBlur)
	assert.Equal(t, Pixel{128, 128, 128}, out.At(0, 0), "first row blends with the row below")
	assert.Equal(t, Pixel{128, 128, 128}, out.At(0, 1))
	assert.Equal(t, Pixel{128, 128, 128}, out.At(0, 2))
}

func TestApplyFilter_BlurSingleRow(t *testing.T) {
	c, err := NewCanvas(2, 1, Pixel{9, 9, 9})
	require.NoError(t, err)
	assert.True(t, c.ApplyFilter(FilterBlur).Equal(c))
}
