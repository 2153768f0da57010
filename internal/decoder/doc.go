// Package decoder adapts ffmpeg into a frame source: it spawns one ffmpeg
// process per playback that scales and rate-converts the input and writes
// headerless rgb24 frames to a pipe, and exposes the pipe as fixed-size
// frame reads.
//
// The decoder is the only hard external dependency of the player. Audio
// and probing degrade gracefully; a missing or failing decoder ends
// playback.
package decoder
