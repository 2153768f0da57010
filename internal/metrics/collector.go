package metrics

import (
	"time"

	"termplay/internal/logging"
)

// StatsProvider interface for collecting playback stats
type StatsProvider interface {
	GetStats() Stats
}

// Stats holds one snapshot of playback progress
type Stats struct {
	Frames   int64
	Overruns int64
	Elapsed  time.Duration
}

// Collector periodically copies playback progress into the session gauges
type Collector struct {
	statsProvider StatsProvider
	interval      time.Duration
	stopChan      chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()

	PlaybackFrames.Set(float64(stats.Frames))
	PlaybackOverruns.Set(float64(stats.Overruns))
	PlaybackElapsedSeconds.Set(stats.Elapsed.Seconds())
	if stats.Elapsed > 0 {
		PlaybackEffectiveFPS.Set(float64(stats.Frames) / stats.Elapsed.Seconds())
	}

	logging.Debug("Metrics collected: frames=%d, overruns=%d, elapsed=%s",
		stats.Frames, stats.Overruns, stats.Elapsed)
}
