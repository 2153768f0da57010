// Package render converts raw RGB24 frames into terminal text.
//
// Two renderers are provided. ASCII maps each pixel's Rec. 709 luminance
// onto a ten-character density palette, one character per pixel. Color
// emits each pixel as a two-column cell painted with a 24-bit background
// color sequence, with an attribute reset at the end of every row.
//
// Both renderers append into a caller-owned bytes.Buffer so the playback
// loop can reuse one allocation across frames.
package render
