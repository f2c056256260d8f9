package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCanvas(t *testing.T) *Canvas {
	t.Helper()
	c, err := NewCanvas(4, 3, blankPixel)
	require.NoError(t, err)
	c.Set(0, 0, red)
	c.Set(3, 2, Pixel{64, 125, 125})
	c.Set(1, 1, black)
	return c
}

func TestCodec_LosslessRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := sampleCanvas(t)

	for _, name := range []string{"a.png", "b.bmp", "c.tiff", "d.tif", "E.PNG"} {
		path := filepath.Join(dir, name)
		require.NoError(t, saveCanvas(path, c), name)

		got, err := loadCanvas(path)
		require.NoError(t, err, name)
		assert.True(t, c.Equal(got), "%s did not round-trip", name)
	}
}

func TestCodec_LossyFormatsKeepDimensions(t *testing.T) {
	dir := t.TempDir()
	c := sampleCanvas(t)

	for _, name := range []string{"a.jpg", "b.jpeg", "c.gif"} {
		path := filepath.Join(dir, name)
		require.NoError(t, saveCanvas(path, c), name)

		got, err := loadCanvas(path)
		require.NoError(t, err, name)
		assert.Equal(t, 4, got.Width(), name)
		assert.Equal(t, 3, got.Height(), name)
	}
}

func TestCodec_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.png")
	first, _ := NewCanvas(2, 2, red)
	second, _ := NewCanvas(3, 1, black)

	require.NoError(t, saveCanvas(path, first))
	require.NoError(t, saveCanvas(path, second))

	got, err := loadCanvas(path)
	require.NoError(t, err)
	assert.True(t, second.Equal(got))
}

func TestCodec_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	c := sampleCanvas(t)

	for _, name := range []string{"a.txt", "noext", "c.webp"} {
		err := saveCanvas(filepath.Join(dir, name), c)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, name)
	}
	_, err := os.Stat(filepath.Join(dir, "a.txt"))
	assert.True(t, os.IsNotExist(err), "nothing written")
}

func TestCheckSavable(t *testing.T) {
	for _, ok := range []string{"x.png", "X.JPG", "y.jpeg", "z.bmp", "w.tif", "v.TIFF", "u.gif"} {
		assert.NoError(t, checkSavable(ok), ok)
	}
	for _, bad := range []string{"x", "x.svg", "x.webp"} {
		assert.ErrorIs(t, checkSavable(bad), ErrUnsupportedFormat, bad)
	}
}

func TestSavePathFor(t *testing.T) {
	assert.Equal(t, filepath.Join("pics", "cat.png"), savePathFor(filepath.Join("pics", "cat.webp")))
	assert.Equal(t, "cat.png", savePathFor("cat.WEBP"))
	assert.Equal(t, "cat.jpg", savePathFor("cat.jpg"))
}

func TestLoadCanvas_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := loadCanvas(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, ErrDecode)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = loadCanvas(garbage)
	assert.ErrorIs(t, err, ErrDecode)
}
