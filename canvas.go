package main

import (
	"fmt"
	"image"
	"image/color"
)

// Pixel is a single RGB cell of the image.
type Pixel struct {
	R, G, B uint8
}

// Sum returns R+G+B, used for foreground contrast decisions.
func (p Pixel) Sum() int {
	return int(p.R) + int(p.G) + int(p.B)
}

// blankPixel is the fill color of newly created images.
var blankPixel = Pixel{250, 250, 250}

// Canvas is the editable pixel grid. Dimensions are fixed for its lifetime.
type Canvas struct {
	width  int
	height int
	pixels []Pixel // row-major, pixels[y*width+x]
}

func NewCanvas(width, height int, fill Pixel) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	c := &Canvas{
		width:  width,
		height: height,
		pixels: make([]Pixel, width*height),
	}
	for i := range c.pixels {
		c.pixels[i] = fill
	}
	return c, nil
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

func (c *Canvas) index(x, y int) int {
	if !c.InBounds(x, y) {
		panic(fmt.Sprintf("canvas: (%d,%d) out of range %dx%d", x, y, c.width, c.height))
	}
	return y*c.width + x
}

func (c *Canvas) At(x, y int) Pixel {
	return c.pixels[c.index(x, y)]
}

func (c *Canvas) Set(x, y int, p Pixel) {
	c.pixels[c.index(x, y)] = p
}

// Clone returns an independent deep copy.
func (c *Canvas) Clone() *Canvas {
	pixels := make([]Pixel, len(c.pixels))
	copy(pixels, c.pixels)
	return &Canvas{width: c.width, height: c.height, pixels: pixels}
}

func (c *Canvas) Equal(other *Canvas) bool {
	if other == nil || c.width != other.width || c.height != other.height {
		return false
	}
	for i := range c.pixels {
		if c.pixels[i] != other.pixels[i] {
			return false
		}
	}
	return true
}

// ToImage converts the canvas to an opaque RGBA image for encoding.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.At(x, y)
			img.SetRGBA(x, y, color.RGBA{p.R, p.G, p.B, 255})
		}
	}
	return img
}

// canvasFromImage copies the RGB channels of img. Alpha is discarded.
func canvasFromImage(img image.Image) (*Canvas, error) {
	bounds := img.Bounds()
	c, err := NewCanvas(bounds.Dx(), bounds.Dy(), Pixel{})
	if err != nil {
		return nil, err
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			n := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			c.Set(x, y, Pixel{n.R, n.G, n.B})
		}
	}
	return c, nil
}
