// Package main provides the entry point for the termplay application.
//
// termplay plays a video file or URL directly in the terminal. Frames are
// decoded by ffmpeg, rendered as truecolor background cells (or ASCII
// luminance characters with --no-color), and written to stdout at the
// requested frame rate while a helper process plays the audio track.
//
// # Application Lifecycle
//
// The player follows a structured startup sequence:
//
//  1. Flag Parsing: Cobra parses the input path and playback flags
//  2. Validation: Rejects missing input and frame rates below 1
//  3. Decoder Check: Verifies ffmpeg is present on PATH
//  4. Dimension Resolution: Probes the source resolution (cached in
//     SQLite) to derive the render height when no override is given
//  5. Audio Start: Launches an audio helper (afplay/ffplay/mpv) if found
//  6. Video Decode: Spawns ffmpeg writing raw RGB24 frames to a pipe
//  7. Playback Loop: Reads, renders, and writes frames paced to the
//     target frame rate
//  8. Teardown: Kills every registered child process, restores the
//     cursor, and reports playback statistics
//
// # Background Services
//
// A handful of goroutines run alongside the playback loop:
//
//   - Audio Helper: Waits on the audio player process
//   - Signal Handler: Tears down child processes on SIGINT/SIGTERM
//   - Metrics Server: Serves Prometheus metrics (optional)
//   - Metrics Collector: Updates session gauges every second (optional)
//
// # Environment Variables
//
// Configuration beyond the command-line flags is through environment
// variables:
//
//   - LOG_LEVEL: Logging level (debug/info/warn/error, default: info)
//   - DEBUG: Force debug logging when set to a truthy value
//   - TERMPLAY_CACHE_DIR: Directory for the probe cache database
//   - TERMPLAY_METRICS_ADDR: Listen address for the metrics server
//     (metrics are disabled when unset)
//   - TERMPLAY_AUDIO_PLAYER: Audio helper binary, overriding the
//     built-in candidate list
//
// # Teardown
//
// Playback ends when the frame stream does, when stdout fails, or when
// the user interrupts with SIGINT/SIGTERM. All paths converge on the
// same steps:
//
//  1. Kill every child process recorded in the registry
//  2. Restore the terminal cursor
//  3. Report frames rendered, elapsed time, and pacing overruns
//
// The registry tolerates repeated teardown, so the signal handler and
// the normal exit path can both run it safely.
//
// # Build Requirements
//
// The probe cache uses SQLite through CGO:
//
//	go build -o termplay ./cmd/termplay
//
// ffmpeg must be installed at runtime; ffprobe and an audio player
// (afplay, ffplay, or mpv) are used when available.
//
// # Related Packages
//
//   - [termplay/internal/player]: Playback orchestration
//   - [termplay/internal/decoder]: ffmpeg raw-frame decoding
//   - [termplay/internal/render]: ASCII and truecolor frame rendering
//   - [termplay/internal/pacer]: Frame-rate pacing
//   - [termplay/internal/probe]: Source resolution probing and caching
//   - [termplay/internal/audio]: Audio helper discovery and playback
//   - [termplay/internal/registry]: Child process tracking and teardown
//   - [termplay/internal/startup]: Environment and decoder checks
package main
