// Package render turns world snapshots into pixels or text.
package render

import (
	"fmt"
	"io"
	"strings"

	"tileroam/internal/world"
)

// Glyph returns the character drawn for a cell: its occupant if any,
// otherwise its ground. Empty ground is a space.
func Glyph(f world.Field) byte {
	s := f.Visible().Symbol()
	if s == "" {
		return ' '
	}
	return s[0]
}

// Text renders w as one line of glyphs per row.
func Text(w world.World) string {
	size := w.Size()
	var b strings.Builder
	b.Grow((size.W + 1) * size.H)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			b.WriteByte(Glyph(w.At(world.Coordinate{X: x, Y: y})))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFrame writes a titled frame of w to out.
func WriteFrame(out io.Writer, title string, w world.World) error {
	_, err := fmt.Fprintf(out, "%s\n%s", title, Text(w))
	return err
}
