package startup

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"termplay/internal/logging"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
	OS        string
	Arch      string
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// CheckDecoder verifies that ffmpeg is reachable via PATH. Playback cannot
// start without the decoder, so callers treat an error here as fatal. The
// version lookup that follows the path check is informational only.
func CheckDecoder() error {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return fmt.Errorf("ffmpeg not found in PATH")
	}
	logging.Debug("  FFmpeg path: %s", path)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ffmpeg", "-version")
	output, err := cmd.Output()
	if err != nil {
		logging.Debug("  FFmpeg version unavailable: %v", err)
		return nil
	}

	lines := strings.Split(string(output), "\n")
	if len(lines) > 0 {
		logging.Debug("  FFmpeg version: %s", strings.TrimSpace(lines[0]))
	}

	return nil
}

// ProbeAvailable reports whether ffprobe is reachable via PATH. Probing is
// optional; without it playback falls back to an assumed aspect ratio.
func ProbeAvailable() bool {
	path, err := exec.LookPath("ffprobe")
	if err != nil {
		logging.Debug("  FFprobe not found: %v", err)
		return false
	}
	logging.Debug("  FFprobe path: %s", path)
	return true
}

// Getenv returns the value of the environment variable key, or defaultValue
// when the variable is unset or empty.
func Getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetenvBool parses the environment variable key as a boolean, returning
// defaultValue when the variable is unset or does not parse.
func GetenvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
