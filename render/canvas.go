package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Canvas is a fixed-size RGBA pixel buffer. It wraps an image.RGBA so text
// drawing can target it directly, and adds the small surface the generator
// needs: fill, clone, equality, PNG output.
//
// A Canvas is created fresh per static render or animation step and is
// never mutated after being appended to a frame sequence.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas with the given dimensions. All pixels start
// fully transparent black.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the backing image. The canvas and the returned image share
// pixels.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Data returns the raw pixel data in RGBA order, 4 bytes per pixel.
func (c *Canvas) Data() []uint8 {
	return c.img.Pix
}

// Fill sets every pixel to the given color.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// At returns the color of a single pixel. Out-of-bounds coordinates return
// transparent black.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Clone returns a deep copy sharing no pixels with the original.
func (c *Canvas) Clone() *Canvas {
	dup := image.NewRGBA(c.img.Rect)
	copy(dup.Pix, c.img.Pix)
	return &Canvas{img: dup}
}

// Equal reports whether two canvases have identical dimensions and pixel
// data.
func (c *Canvas) Equal(o *Canvas) bool {
	if o == nil {
		return false
	}
	return c.img.Rect == o.img.Rect && bytes.Equal(c.img.Pix, o.img.Pix)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, c.img)
}
