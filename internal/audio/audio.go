package audio

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"termplay/internal/logging"
	"termplay/internal/metrics"
	"termplay/internal/registry"
	"termplay/internal/startup"
)

// players lists the candidate binaries in preference order.
var players = []string{"afplay", "ffplay", "mpv"}

// PlayerArgs returns the invocation that makes the given player play just
// the audio track of input, quietly and without a window.
func PlayerArgs(player, input string) []string {
	switch filepath.Base(player) {
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", input}
	case "mpv":
		return []string{"--no-video", "--really-quiet", input}
	default:
		// afplay and unrecognized overrides get the bare input.
		return []string{input}
	}
}

// Find returns the audio player binary to use: the TERMPLAY_AUDIO_PLAYER
// override when set, otherwise the first candidate present on PATH.
func Find() (string, error) {
	if override := startup.Getenv("TERMPLAY_AUDIO_PLAYER", ""); override != "" {
		path, err := exec.LookPath(override)
		if err != nil {
			return "", fmt.Errorf("audio player %q not found in PATH", override)
		}
		return path, nil
	}

	for _, name := range players {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no audio player found (tried %s)", strings.Join(players, ", "))
}

// Play spawns the audio player for input, registers its PID with reg, and
// blocks until the player exits. The exit status is discarded: by the time
// the player exits, teardown may already have killed it. The player's
// stdout and stderr stay detached from the terminal, which belongs to the
// video.
func Play(input string, reg *registry.Registry) error {
	player, err := Find()
	if err != nil {
		return err
	}

	cmd := exec.Command(player, PlayerArgs(player, input)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", filepath.Base(player), err)
	}
	metrics.ProcessesSpawned.WithLabelValues("audio").Inc()
	reg.Register(cmd.Process.Pid)
	logging.Debug("Audio sidecar %s running with pid %d", filepath.Base(player), cmd.Process.Pid)

	_ = cmd.Wait()
	return nil
}
