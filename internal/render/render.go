package render

import "bytes"

// palette orders ten characters from densest to lightest. Luminance maps
// linearly onto it, so black comes out as '@' and white as a blank.
const palette = "@%#*+=-:. "

// Luminance returns the Rec. 709 luma of one RGB pixel on the 0-255 scale.
func Luminance(r, g, b uint8) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

// Char maps a luminance value onto the palette. The mapping is monotonic:
// a brighter pixel never selects a denser character.
func Char(lum float64) byte {
	idx := int(lum / 255 * float64(len(palette)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}

// Renderer turns one raw RGB frame into terminal text. Implementations
// append to dst and never write a newline after the last row.
type Renderer interface {
	Render(dst *bytes.Buffer, frame []byte)
}

// New returns the renderer for the given frame size and mode.
func New(width, height int, color bool) Renderer {
	if color {
		return NewColor(width, height)
	}
	return NewASCII(width, height)
}
