package audio

import (
	"os/exec"
	"strings"
	"testing"

	"termplay/internal/registry"
)

func TestPlayerArgs(t *testing.T) {
	tests := []struct {
		name     string
		player   string
		input    string
		expected []string
	}{
		{
			name:     "afplay takes the bare input",
			player:   "afplay",
			input:    "movie.mp4",
			expected: []string{"movie.mp4"},
		},
		{
			name:     "ffplay runs quiet with no display",
			player:   "ffplay",
			input:    "movie.mp4",
			expected: []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "movie.mp4"},
		},
		{
			name:     "mpv drops video",
			player:   "mpv",
			input:    "movie.mp4",
			expected: []string{"--no-video", "--really-quiet", "movie.mp4"},
		},
		{
			name:     "Full paths resolve by base name",
			player:   "/usr/local/bin/mpv",
			input:    "clip.mkv",
			expected: []string{"--no-video", "--really-quiet", "clip.mkv"},
		},
		{
			name:     "Unrecognized override gets the bare input",
			player:   "custom-player",
			input:    "clip.mkv",
			expected: []string{"clip.mkv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlayerArgs(tt.player, tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("PlayerArgs(%q) = %v, want %v", tt.player, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("PlayerArgs(%q)[%d] = %q, want %q", tt.player, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestFindOverrideMissing(t *testing.T) {
	t.Setenv("TERMPLAY_AUDIO_PLAYER", "definitely-not-a-real-player")

	if _, err := Find(); err == nil {
		t.Error("Expected an error for a missing override binary")
	}
}

func TestFindOverridePresent(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}
	t.Setenv("TERMPLAY_AUDIO_PLAYER", "sleep")

	path, err := Find()
	if err != nil {
		t.Fatalf("Expected the override to be found, got %v", err)
	}
	if !strings.HasSuffix(path, "sleep") {
		t.Errorf("Expected a path to sleep, got %q", path)
	}
}

func TestFindNoCandidates(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Find()
	if err == nil {
		t.Fatal("Expected an error with an empty PATH")
	}
	if !strings.Contains(err.Error(), "no audio player found") {
		t.Errorf("Expected a candidate-list error, got %q", err.Error())
	}
}

func TestPlayRunsAndRegisters(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	t.Setenv("TERMPLAY_AUDIO_PLAYER", "true")

	reg := registry.New()
	if err := Play("ignored.mp4", reg); err != nil {
		t.Fatalf("Expected Play to succeed, got %v", err)
	}
	if reg.Len() != 1 {
		t.Errorf("Expected 1 registered process, got %d", reg.Len())
	}
}

func TestPlayMissingPlayer(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	reg := registry.New()
	if err := Play("ignored.mp4", reg); err == nil {
		t.Fatal("Expected an error with no player available")
	}
	if reg.Len() != 0 {
		t.Errorf("Expected no registrations on failure, got %d", reg.Len())
	}
}
