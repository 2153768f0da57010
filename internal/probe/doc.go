// Package probe discovers the source resolution of an input by running
// ffprobe, and caches the results in a small SQLite database keyed by
// path, size, and modification time.
//
// Probing is advisory. It only influences automatic height selection, so
// every failure mode (no ffprobe, unreadable input, no video stream) is
// reported as an ordinary error for the caller to absorb.
package probe
