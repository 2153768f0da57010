// Package startup handles pre-playback checks, environment helpers, and
// build information.
//
// # Environment Variables
//
// Configuration that does not belong on the command line is read from the
// environment:
//
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - DEBUG: Set to 1/true to force debug logging
//   - TERMPLAY_CACHE_DIR: Directory for the probe result cache
//     (default: the user cache directory, e.g. ~/.cache/termplay)
//   - TERMPLAY_METRICS_ADDR: Listen address for the optional Prometheus
//     endpoint, e.g. ":9090" (default: disabled)
//   - TERMPLAY_AUDIO_PLAYER: Audio player binary to use instead of the
//     built-in candidate list
//
// # Decoder Check
//
// [CheckDecoder] verifies that ffmpeg is on PATH before playback starts.
// Without the decoder nothing can be played, so this failure is fatal.
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via
// [GetBuildInfo]:
//   - Version: Application version
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
package startup
