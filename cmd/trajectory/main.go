// Command trajectory simulates a projectile under gravity and wind,
// plots every tick of its flight on a canvas, and writes the image as
// PPM or BMP.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/katalvlaran/affine3d/canvas"
	"github.com/katalvlaran/affine3d/tuple"
)

type projectile struct {
	position tuple.Tuple // point
	velocity tuple.Tuple // vector
}

type environment struct {
	gravity tuple.Tuple // vector, applied every tick
	wind    tuple.Tuple // vector, applied every tick
}

// tick advances the projectile by one time step.
func tick(env environment, p projectile) projectile {
	return projectile{
		position: p.position.Add(p.velocity),
		velocity: p.velocity.Add(env.gravity).Add(env.wind),
	}
}

func run(out, format string) error {
	const width, height = 960, 540

	c, err := canvas.New(width, height)
	if err != nil {
		return err
	}

	p := projectile{
		position: tuple.NewPoint(0, 1, 0),
		velocity: tuple.NewVector(1.5, 1, 0).Normalize().Scale(10),
	}
	env := environment{
		gravity: tuple.NewVector(0, -0.1, 0),
		wind:    tuple.NewVector(-0.04, 0, 0),
	}

	shade := canvas.NewColor(0.99, 0.625, 0)
	for p.position.Y > 0 {
		x := int(math.Round(p.position.X))
		y := height - int(math.Round(p.position.Y))
		// The projectile may overshoot the canvas; skip those ticks.
		if err := c.SetPixel(x, y, shade); err != nil {
			log.Printf("skipping off-canvas tick: %v", err)
		}

		shade = shade.Add(canvas.NewColor(0, 0, 0.01))
		p = tick(env, p)
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
	out := flag.String("o", "trajectory.ppm", "output file")
	format := flag.String("format", "ppm", "output format: ppm or bmp")
	flag.Parse()

	if err := run(*out, *format); err != nil {
		log.Fatal(err)
	}
}
