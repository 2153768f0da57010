package config

import (
	"errors"
	"fmt"
)

// Defaults applied when a flag is not given on the command line.
const (
	// DefaultFPS is the target frame rate.
	DefaultFPS = 24
	// DefaultWidth is the output width in terminal columns.
	DefaultWidth = 80
	// DefaultHeight is the output height in rows. A zero or negative
	// height on the command line selects automatic height instead.
	DefaultHeight = 70
)

// Config holds one playback request. It is assembled from command-line
// flags and validated once before playback starts.
type Config struct {
	// Input is the path or URL handed to the decoder.
	Input string
	// FPS is the target frame rate.
	FPS int
	// Width is the requested output width in terminal columns.
	Width int
	// Height is the requested output height in rows. Zero or negative
	// selects automatic height from the source aspect ratio.
	Height int
	// NoSound disables the audio sidecar process.
	NoSound bool
	// NoColor selects ASCII luminance rendering instead of color cells.
	NoColor bool
}

// Default returns a Config with the standard defaults and no input.
func Default() Config {
	return Config{
		FPS:    DefaultFPS,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Validate checks the parts of the configuration playback cannot repair on
// its own. The input is not required to exist on disk; the decoder accepts
// URLs and device inputs as well as files.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("no input given")
	}
	if c.FPS < 1 {
		return fmt.Errorf("fps must be at least 1, got %d", c.FPS)
	}
	return nil
}

// Color reports whether color rendering is active.
func (c *Config) Color() bool {
	return !c.NoColor
}

// Sound reports whether the audio sidecar should run.
func (c *Config) Sound() bool {
	return !c.NoSound
}
