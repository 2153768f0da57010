package terminal

import (
	"bytes"
	"strconv"
)

// Control sequences written around and during playback. They are emitted
// verbatim with no terminfo lookup.
const (
	// ClearScreen erases the visible screen contents.
	ClearScreen = "\x1b[2J"
	// CursorHome moves the cursor to the top-left corner.
	CursorHome = "\x1b[H"
	// HideCursor makes the cursor invisible.
	HideCursor = "\x1b[?25l"
	// ShowCursor makes the cursor visible again.
	ShowCursor = "\x1b[?25h"
	// Reset clears all active display attributes.
	Reset = "\x1b[0m"
)

// AppendBackground appends the 24-bit background color sequence
// ESC[48;2;R;G;Bm for one pixel to dst. It runs once per pixel per
// frame and must not allocate.
func AppendBackground(dst *bytes.Buffer, r, g, b uint8) {
	dst.WriteString("\x1b[48;2;")
	dst.WriteString(strconv.Itoa(int(r)))
	dst.WriteByte(';')
	dst.WriteString(strconv.Itoa(int(g)))
	dst.WriteByte(';')
	dst.WriteString(strconv.Itoa(int(b)))
	dst.WriteByte('m')
}
