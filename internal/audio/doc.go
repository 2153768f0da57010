// Package audio runs the optional audio sidecar: a command-line player
// (afplay, ffplay, or mpv, or an override named by TERMPLAY_AUDIO_PLAYER)
// spawned against the same input as the video.
//
// Audio never steers playback. The sidecar is started on its own
// goroutine, its failures are reported as warnings, and the frame loop
// neither waits for it nor checks on it. Synchronization with the video is
// whatever falls out of starting both at the same time.
package audio
