package canvas

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineLen is the longest pixel-data line some PPM readers accept.
const maxLineLen = 70

// channel clamps v to [0, 1] and quantizes it to an 8-bit channel,
// rounding half away from zero.
func channel(v float64) uint8 {
	clamped := math.Min(math.Max(v, 0), 1)

	return uint8(math.Round(clamped * 255))
}

// PPM serializes the canvas to the plain-text PPM (P3) format: a
// three-line header, then one logical line of channel values per pixel
// row, wrapped at word boundaries so no line exceeds 70 characters.
// The output ends with a newline.
func (c *Canvas) PPM() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n255\n", c.width, c.height)

	words := make([]string, 0, c.width*3)
	for y := 0; y < c.height; y++ {
		words = words[:0]
		for x := 0; x < c.width; x++ {
			px := c.pixels[y*c.width+x]
			words = append(words,
				strconv.Itoa(int(channel(px.R))),
				strconv.Itoa(int(channel(px.G))),
				strconv.Itoa(int(channel(px.B))))
		}
		writeWrapped(&b, words)
	}

	return b.String()
}

// writeWrapped emits words separated by single spaces, starting a new
// line whenever the next word would push the current line past
// maxLineLen. Every call ends the final line with a newline.
func writeWrapped(b *strings.Builder, words []string) {
	lineLen := 0
	for _, w := range words {
		switch {
		case lineLen == 0:
			b.WriteString(w)
			lineLen = len(w)
		case lineLen+1+len(w) > maxLineLen:
			b.WriteByte('\n')
			b.WriteString(w)
			lineLen = len(w)
		default:
			b.WriteByte(' ')
			b.WriteString(w)
			lineLen += 1 + len(w)
		}
	}
	if lineLen > 0 {
		b.WriteByte('\n')
	}
}

// WritePPM writes the PPM serialization to w.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := io.WriteString(w, c.PPM()); err != nil {
		return fmt.Errorf("WritePPM: %w", err)
	}

	return nil
}
