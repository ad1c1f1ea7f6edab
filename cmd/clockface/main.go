// Command clockface plots the twelve hour marks of an analog clock by
// rotating a single point around the z axis, and writes the image as
// PPM or BMP.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/katalvlaran/affine3d/canvas"
	"github.com/katalvlaran/affine3d/transform"
	"github.com/katalvlaran/affine3d/tuple"
)

func run(out, format string) error {
	const side = 256

	c, err := canvas.New(side, side)
	if err != nil {
		return err
	}

	// Twelve o'clock sits at 3/8 of the side above the center.
	mark := tuple.NewPoint(0, side*3/8, 0)
	white := canvas.NewColor(1, 1, 1)

	for hour := 0; hour < 12; hour++ {
		rotated := transform.RotationZ(float64(hour) * math.Pi / 6).MulTuple(mark)
		x := side/2 + int(math.Round(rotated.X))
		y := side/2 - int(math.Round(rotated.Y))
		if err := c.SetPixel(x, y, white); err != nil {
			return err
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "ppm":
		return c.WritePPM(f)
	case "bmp":
		return c.EncodeBMP(f)
	default:
		return fmt.Errorf("unknown format %q (want ppm or bmp)", format)
	}
}

func main() {
	out := flag.String("o", "clockface.ppm", "output file")
	format := flag.String("format", "ppm", "output format: ppm or bmp")
	flag.Parse()

	if err := run(*out, *format); err != nil {
		log.Fatal(err)
	}
}
