package render

import "bytes"

// ASCII renders frames as luminance-mapped characters, one per pixel.
type ASCII struct {
	width  int
	height int
}

// NewASCII returns an ASCII renderer for the given frame size.
func NewASCII(width, height int) *ASCII {
	return &ASCII{width: width, height: height}
}

// Render appends the text form of frame to dst. Rows are separated by
// newlines; pixels past the end of a short frame come out as spaces.
func (a *ASCII) Render(dst *bytes.Buffer, frame []byte) {
	dst.Grow(a.height * (a.width + 1))

	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			idx := (y*a.width + x) * 3
			if idx+2 >= len(frame) {
				dst.WriteByte(' ')
				continue
			}
			dst.WriteByte(Char(Luminance(frame[idx], frame[idx+1], frame[idx+2])))
		}
		if y != a.height-1 {
			dst.WriteByte('\n')
		}
	}
}
