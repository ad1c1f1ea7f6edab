package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
)

// Image converts the canvas to an 8-bit NRGBA image, clamping and
// quantizing channels exactly as the PPM serializer does. The result
// works with any encoder in the image ecosystem.
func (c *Canvas) Image() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			px := c.pixels[y*c.width+x]
			img.SetNRGBA(x, y, color.NRGBA{
				R: channel(px.R),
				G: channel(px.G),
				B: channel(px.B),
				A: 255,
			})
		}
	}

	return img
}

// EncodeBMP writes the canvas to w as a BMP image.
func (c *Canvas) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("EncodeBMP: %w", err)
	}

	return nil
}
