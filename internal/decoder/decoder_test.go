package decoder

import (
	"bufio"
	"bytes"
	"io"
	"os/exec"
	"path/filepath"
	"reflect"
	"testing"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		height   int
		fps      int
		expected []string
	}{
		{
			name:   "Standard invocation",
			input:  "movie.mp4",
			width:  40,
			height: 12,
			fps:    24,
			expected: []string{
				"-hide_banner",
				"-loglevel", "error",
				"-nostdin",
				"-i", "movie.mp4",
				"-an",
				"-vf", "fps=24,scale=40:12",
				"-f", "rawvideo",
				"-pix_fmt", "rgb24",
				"pipe:1",
			},
		},
		{
			name:   "URL input passes through",
			input:  "https://example.com/clip.mkv",
			width:  80,
			height: 45,
			fps:    10,
			expected: []string{
				"-hide_banner",
				"-loglevel", "error",
				"-nostdin",
				"-i", "https://example.com/clip.mkv",
				"-an",
				"-vf", "fps=10,scale=80:45",
				"-f", "rawvideo",
				"-pix_fmt", "rgb24",
				"pipe:1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Args(tt.input, tt.width, tt.height, tt.fps)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Args() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFrameSize(t *testing.T) {
	d := &Decoder{frameSize: 40 * 12 * BytesPerPixel}
	if d.FrameSize() != 1440 {
		t.Errorf("Expected frame size 1440, got %d", d.FrameSize())
	}
}

func TestReadFrameStreamEnd(t *testing.T) {
	// Two full 3-byte frames plus a truncated trailing one.
	data := make([]byte, 7)
	d := &Decoder{reader: bufio.NewReaderSize(bytes.NewReader(data), 16), frameSize: 3}

	buf := make([]byte, 3)
	for i := 0; i < 2; i++ {
		if err := d.ReadFrame(buf); err != nil {
			t.Fatalf("Frame %d failed: %v", i, err)
		}
	}

	if err := d.ReadFrame(buf); err != io.ErrUnexpectedEOF {
		t.Errorf("Expected ErrUnexpectedEOF on the truncated frame, got %v", err)
	}
}

func TestReadFrameEmptyStream(t *testing.T) {
	d := &Decoder{reader: bufio.NewReaderSize(bytes.NewReader(nil), 16), frameSize: 3}

	if err := d.ReadFrame(make([]byte, 3)); err != io.EOF {
		t.Errorf("Expected EOF on an empty stream, got %v", err)
	}
}

func TestDecoderIntegration(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}

	// Generate a one-second test clip to decode.
	sample := filepath.Join(t.TempDir(), "sample.avi")
	gen := exec.Command("ffmpeg",
		"-hide_banner", "-loglevel", "error",
		"-f", "lavfi", "-i", "testsrc=duration=1:size=64x48:rate=10",
		"-c:v", "mpeg4",
		sample,
	)
	if out, err := gen.CombinedOutput(); err != nil {
		t.Skipf("Could not generate sample clip: %v (%s)", err, out)
	}

	dec, err := Start(sample, 16, 8, 5)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if dec.PID() <= 0 {
		t.Errorf("Expected a positive PID, got %d", dec.PID())
	}
	if dec.FrameSize() != 16*8*3 {
		t.Errorf("Expected frame size %d, got %d", 16*8*3, dec.FrameSize())
	}

	frames := 0
	buf := make([]byte, dec.FrameSize())
	for {
		if err := dec.ReadFrame(buf); err != nil {
			break
		}
		frames++
		if frames > 100 {
			t.Fatal("Decoder produced far too many frames")
		}
	}

	// One second at 5 fps; allow slack for rate conversion at the edges.
	if frames < 3 || frames > 8 {
		t.Errorf("Expected about 5 frames, got %d", frames)
	}

	if err := dec.Wait(); err != nil {
		t.Errorf("Expected a clean decoder exit, got %v", err)
	}
}
