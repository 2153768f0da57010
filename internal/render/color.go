package render

import (
	"bytes"

	"termplay/internal/terminal"
)

// cellCost estimates the byte cost of one color cell: the longest
// background sequence plus the two-space cell body.
const cellCost = len("\x1b[48;2;255;255;255m") + 2

// Color renders frames as two-column truecolor background cells.
type Color struct {
	width  int
	height int
}

// NewColor returns a Color renderer for the given frame size.
func NewColor(width, height int) *Color {
	return &Color{width: width, height: height}
}

// Render appends truecolor cells for frame to dst. Every row ends with an
// attribute reset, rows are separated by newlines, and pixels past the end
// of a short frame come out as plain spaces.
func (c *Color) Render(dst *bytes.Buffer, frame []byte) {
	dst.Grow(c.height * (c.width*cellCost + len(terminal.Reset) + 1))

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			idx := (y*c.width + x) * 3
			if idx+2 >= len(frame) {
				dst.WriteByte(' ')
				continue
			}
			terminal.AppendBackground(dst, frame[idx], frame[idx+1], frame[idx+2])
			dst.WriteString("  ")
		}
		dst.WriteString(terminal.Reset)
		if y != c.height-1 {
			dst.WriteByte('\n')
		}
	}
}
