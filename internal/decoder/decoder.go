package decoder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"termplay/internal/logging"
	"termplay/internal/metrics"
)

// BytesPerPixel is fixed by the rgb24 pixel format requested from ffmpeg.
const BytesPerPixel = 3

// readBufferSize is the buffer placed over the decoder's stdout pipe.
const readBufferSize = 64 * 1024

// Decoder drives the ffmpeg process that turns an input into a headerless
// stream of fixed-size RGB frames on stdout.
type Decoder struct {
	cmd       *exec.Cmd
	reader    *bufio.Reader
	width     int
	height    int
	frameSize int
}

// Args returns the ffmpeg argument list that decodes input into raw rgb24
// frames of the given size and rate on stdout. Audio is dropped and
// ffmpeg's own output is limited to errors.
func Args(input string, width, height, fps int) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-nostdin",
		"-i", input,
		"-an",
		"-vf", fmt.Sprintf("fps=%d,scale=%d:%d", fps, width, height),
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"pipe:1",
	}
}

// Start spawns the decoder process. The returned Decoder is ready for
// ReadFrame calls; the caller owns registration and teardown of the
// process. Decoder diagnostics pass through to the user's stderr.
func Start(input string, width, height, fps int) (*Decoder, error) {
	args := Args(input, width, height, fps)
	logging.Debug("Starting decoder: ffmpeg %s", strings.Join(args, " "))

	cmd := exec.Command("ffmpeg", args...)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}
	metrics.ProcessesSpawned.WithLabelValues("decoder").Inc()
	logging.Debug("Decoder running with pid %d", cmd.Process.Pid)

	return &Decoder{
		cmd:       cmd,
		reader:    bufio.NewReaderSize(stdout, readBufferSize),
		width:     width,
		height:    height,
		frameSize: width * height * BytesPerPixel,
	}, nil
}

// FrameSize returns the byte length of one frame.
func (d *Decoder) FrameSize() int {
	return d.frameSize
}

// PID returns the decoder process id.
func (d *Decoder) PID() int {
	return d.cmd.Process.Pid
}

// ReadFrame fills buf with exactly one frame. Any error, including a
// partial trailing read, means the stream is over.
func (d *Decoder) ReadFrame(buf []byte) error {
	n, err := io.ReadFull(d.reader, buf)
	if err != nil {
		return err
	}
	metrics.FrameBytesRead.Add(float64(n))
	return nil
}

// Wait reaps the decoder process once the stream is done. By that point
// the exit status carries no information: the stream may have ended
// naturally or teardown may have killed the process.
func (d *Decoder) Wait() error {
	return d.cmd.Wait()
}
