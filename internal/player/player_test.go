package player

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"termplay/internal/config"
	"termplay/internal/pacer"
	"termplay/internal/registry"
	"termplay/internal/render"
)

// fakeSource feeds a fixed list of frames to the playback loop.
type fakeSource struct {
	frames [][]byte
	idx    int
}

func (f *fakeSource) ReadFrame(buf []byte) error {
	if f.idx >= len(f.frames) {
		return io.EOF
	}
	copy(buf, f.frames[f.idx])
	f.idx++
	return nil
}

func testPlayer(cfg config.Config) *Player {
	return New(cfg, registry.New())
}

func TestPlayRendersAllFrames(t *testing.T) {
	p := testPlayer(config.Config{Input: "x.mp4", FPS: 1000, Width: 2, NoColor: true})

	// Three 2x1 frames: black, white, black.
	src := &fakeSource{frames: [][]byte{
		{0, 0, 0, 0, 0, 0},
		{255, 255, 255, 255, 255, 255},
		{0, 0, 0, 0, 0, 0},
	}}

	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	p.play(src, render.NewASCII(2, 1), pacer.New(1000), out, 6)

	got := buf.String()
	if count := strings.Count(got, "\x1b[H"); count != 3 {
		t.Errorf("Expected 3 cursor-home writes, got %d", count)
	}
	if !strings.Contains(got, "@@") {
		t.Errorf("Expected a black frame in output, got %q", got)
	}
	if !strings.Contains(got, "  ") {
		t.Errorf("Expected a white frame in output, got %q", got)
	}

	stats := p.GetStats()
	if stats.Frames != 3 {
		t.Errorf("Expected 3 frames, got %d", stats.Frames)
	}
}

func TestPlayEmptyStream(t *testing.T) {
	p := testPlayer(config.Config{Input: "x.mp4", FPS: 1000, Width: 2, NoColor: true})

	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	p.play(&fakeSource{}, render.NewASCII(2, 1), pacer.New(1000), out, 6)

	if buf.Len() != 0 {
		t.Errorf("Expected no output for an empty stream, got %q", buf.String())
	}
	if stats := p.GetStats(); stats.Frames != 0 {
		t.Errorf("Expected 0 frames, got %d", stats.Frames)
	}
}

// failingSource delivers a number of full frames and then fails the way a
// truncated pipe does.
type failingSource struct {
	after int
	fed   int
}

func (f *failingSource) ReadFrame(buf []byte) error {
	if f.fed >= f.after {
		return io.ErrUnexpectedEOF
	}
	for i := range buf {
		buf[i] = 10
	}
	f.fed++
	return nil
}

func TestPlayStopsOnTruncatedStream(t *testing.T) {
	p := testPlayer(config.Config{Input: "x.mp4", FPS: 1000, Width: 2, NoColor: true})

	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	p.play(&failingSource{after: 1}, render.NewASCII(2, 1), pacer.New(1000), out, 6)

	if count := strings.Count(buf.String(), "\x1b[H"); count != 1 {
		t.Errorf("Expected exactly 1 frame write, got %d", count)
	}
	if stats := p.GetStats(); stats.Frames != 1 {
		t.Errorf("Expected 1 counted frame, got %d", stats.Frames)
	}
}

func TestGetStatsBeforeStart(t *testing.T) {
	p := testPlayer(config.Config{Input: "x.mp4", FPS: 24, Width: 80})

	stats := p.GetStats()
	if stats.Frames != 0 || stats.Overruns != 0 || stats.Elapsed != 0 {
		t.Errorf("Expected zeroed stats before playback, got %+v", stats)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{
			name:    "Empty input",
			cfg:     config.Config{FPS: 24, Width: 80},
			wantErr: "no input given",
		},
		{
			name:    "Zero fps",
			cfg:     config.Config{Input: "x.mp4", Width: 80},
			wantErr: "fps must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := testPlayer(tt.cfg).Run()
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestResolveDimensionsHonorsOverride(t *testing.T) {
	// With an explicit height there is no probe and no decoder involved.
	p := testPlayer(config.Config{Input: "/no/such/file.mp4", FPS: 24, Width: 80, Height: 30})

	width, height := p.resolveDimensions()
	if width != 40 || height != 30 {
		t.Errorf("Expected 40x30, got %dx%d", width, height)
	}
}

func TestResolveDimensionsASCIIOverride(t *testing.T) {
	p := testPlayer(config.Config{Input: "/no/such/file.mp4", FPS: 24, Width: 80, Height: 30, NoColor: true})

	width, height := p.resolveDimensions()
	if width != 80 || height != 30 {
		t.Errorf("Expected 80x30, got %dx%d", width, height)
	}
}
