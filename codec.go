package main

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type encodeFunc func(w io.Writer, img image.Image) error

// encoders are keyed by lower-case extension. PNG goes through gg and is
// handled separately.
var encoders = map[string]encodeFunc{
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
	".gif":  encodeGIF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

// readOnlyFormats decode but have no encoder. Edits to them are saved as a
// PNG next to the original.
var readOnlyFormats = map[string]bool{".webp": true}

func savePathFor(path string) string {
	ext := filepath.Ext(path)
	if readOnlyFormats[strings.ToLower(ext)] {
		return strings.TrimSuffix(path, ext) + ".png"
	}
	return path
}

// checkSavable reports whether path has an extension the editor can write.
func checkSavable(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".png" {
		return nil
	}
	if _, ok := encoders[ext]; ok {
		return nil
	}
	if ext == "" {
		return fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// loadCanvas decodes any registered format (PNG, JPEG, GIF, BMP, TIFF, WebP).
func loadCanvas(path string) (*Canvas, error) {
	img, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	c, err := canvasFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return c, nil
}

// saveCanvas encodes c by path extension, overwriting any existing file.
func saveCanvas(path string, c *Canvas) (err error) {
	if err := checkSavable(path); err != nil {
		return err
	}
	img := c.ToImage()
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".png" {
		if err := gg.SavePNG(path, img); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := encoders[ext](f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
