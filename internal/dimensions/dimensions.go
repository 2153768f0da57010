package dimensions

import "math"

// verticalCompression compensates for terminal cells being roughly twice
// as tall as they are wide.
const verticalCompression = 0.55

// fallbackAspect is the assumed height/width ratio when the source
// resolution is unknown.
const fallbackAspect = 9.0 / 16.0

// Request carries the user-facing sizing inputs.
type Request struct {
	// Width is the requested output width in terminal columns.
	Width int
	// HeightOverride, when positive, fixes the output height in rows.
	HeightOverride int
	// Color selects two-column cells instead of one-column characters.
	Color bool
}

// Source is a probed source resolution.
type Source struct {
	Width  int
	Height int
}

// RenderWidth converts the requested column width into frame pixels. A
// color cell occupies two columns, so color mode halves the width. The
// result is never below one.
func RenderWidth(width int, color bool) int {
	if width < 1 {
		width = 1
	}
	if !color {
		return width
	}
	w := width / 2
	if w < 1 {
		w = 1
	}
	return w
}

// Resolve computes the frame size in pixels for a sizing request. A
// positive height override wins unconditionally. Otherwise the height
// follows the source aspect ratio scaled by the cell compression factor
// when src is known, or a plain 16:9 assumption when it is not. Both
// dimensions are at least one.
func Resolve(req Request, src *Source) (width, height int) {
	width = RenderWidth(req.Width, req.Color)

	if req.HeightOverride > 0 {
		return width, req.HeightOverride
	}

	if src != nil && src.Width > 0 && src.Height > 0 {
		height = int(math.Round(float64(src.Height) * float64(width) / float64(src.Width) * verticalCompression))
	} else {
		height = int(math.Round(float64(width) * fallbackAspect))
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
