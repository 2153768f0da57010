// Package player orchestrates one playback session.
//
// Run wires the pieces together in a fixed order: validate the
// configuration, check for the decoder, resolve the frame size (probing
// the source when the height is automatic), start the audio sidecar on
// its own goroutine, spawn the decoder, install the interrupt handler,
// and then drive the frame loop: read one frame, render it, write it
// behind a cursor-home, and sleep out the rest of the frame interval.
//
// Teardown runs from two places with the same registry: the interrupt
// handler on SIGINT/SIGTERM, and the tail of Run when the stream ends on
// its own. Both kill every registered helper process and restore the
// cursor; doing it twice is harmless.
package player
