package probe

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"termplay/internal/logging"
	"termplay/internal/metrics"
)

// Resolution is a probed source size in pixels.
type Resolution struct {
	Width  int
	Height int
}

// probeTimeout bounds the ffprobe run so a stalled network input cannot
// hold up playback start.
const probeTimeout = 5 * time.Second

// Size asks ffprobe for the resolution of the first video stream of input.
// A missing ffprobe binary, an unreadable input, and a stream list without
// video all come back as errors; callers are expected to absorb them and
// fall back to an assumed aspect ratio.
func Size(input string) (Resolution, error) {
	start := time.Now()
	doc, err := ffmpeg.ProbeWithTimeout(input, probeTimeout, nil)
	metrics.ProbeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return Resolution{}, fmt.Errorf("probe failed: %w", err)
	}

	res, err := parseSize(doc)
	if err != nil {
		return Resolution{}, err
	}
	logging.Debug("Probed %s: %dx%d", input, res.Width, res.Height)
	return res, nil
}

// parseSize extracts the first usable video resolution from ffprobe JSON
// output.
func parseSize(doc string) (Resolution, error) {
	var info struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"streams"`
	}
	if err := json.Unmarshal([]byte(doc), &info); err != nil {
		return Resolution{}, fmt.Errorf("failed to parse probe output: %w", err)
	}

	for _, s := range info.Streams {
		if s.CodecType != "" && s.CodecType != "video" {
			continue
		}
		if s.Width > 0 && s.Height > 0 {
			return Resolution{Width: s.Width, Height: s.Height}, nil
		}
	}
	return Resolution{}, errors.New("no video stream with a usable resolution")
}
