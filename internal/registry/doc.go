// Package registry tracks the helper processes spawned during playback so
// that teardown, whether from the interrupt handler or the normal end of
// the stream, can terminate them all exactly once from one place.
package registry
