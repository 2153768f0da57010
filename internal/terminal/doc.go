// Package terminal holds the ANSI control sequences the player writes
// around and during playback, plus small helpers for querying the output
// device (is it a terminal, how big is it).
package terminal
