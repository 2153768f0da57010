package pacer

import (
	"time"

	"termplay/internal/metrics"
)

// Pacer enforces the per-frame time budget derived from the target frame
// rate. Pacing carries no state between frames: an overrun is absorbed
// where it happens, never repaid by shortening later frames.
//
// A Pacer belongs to a single goroutine.
type Pacer struct {
	interval time.Duration
	mark     time.Time
	overruns int64
	sleep    func(time.Duration)
}

// New returns a Pacer for the given frame rate. Rates below one frame per
// second are clamped to one.
func New(fps int) *Pacer {
	if fps < 1 {
		fps = 1
	}
	return &Pacer{
		interval: time.Duration(float64(time.Second) / float64(fps)),
		sleep:    time.Sleep,
	}
}

// Interval returns the time budget for one frame.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Begin marks the start of one frame's read/render/write work.
func (p *Pacer) Begin() {
	p.mark = time.Now()
}

// Wait sleeps out the remainder of the current frame budget and returns
// the slept duration. A frame that used up its whole budget returns
// immediately with zero.
func (p *Pacer) Wait() time.Duration {
	remaining := p.interval - time.Since(p.mark)
	if remaining <= 0 {
		p.overruns++
		metrics.FrameOverruns.Inc()
		return 0
	}
	p.sleep(remaining)
	return remaining
}

// Overruns reports how many frames have exceeded their budget so far.
func (p *Pacer) Overruns() int64 {
	return p.overruns
}
