package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Playback metrics
var (
	FramesRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "termplay_frames_rendered_total",
			Help: "Total number of frames rendered to the terminal",
		},
	)

	FrameOverruns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "termplay_frame_overruns_total",
			Help: "Total number of frames whose work exceeded the frame interval",
		},
	)

	FrameBytesRead = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "termplay_frame_bytes_read_total",
			Help: "Total raw frame bytes read from the decoder",
		},
	)

	FramePhaseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "termplay_frame_phase_duration_seconds",
			Help:    "Duration of each frame phase in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"phase"}, // "read", "render", "write"
	)
)

// Playback session gauges, updated by the Collector
var (
	PlaybackFrames = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "termplay_playback_frames",
			Help: "Frames rendered in the current playback session",
		},
	)

	PlaybackOverruns = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "termplay_playback_overruns",
			Help: "Frame budget overruns in the current playback session",
		},
	)

	PlaybackElapsedSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "termplay_playback_elapsed_seconds",
			Help: "Elapsed wall-clock time of the current playback session",
		},
	)

	PlaybackEffectiveFPS = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "termplay_playback_effective_fps",
			Help: "Frames rendered per elapsed second in the current session",
		},
	)
)

// Helper process metrics
var (
	ProcessesSpawned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "termplay_helper_processes_spawned_total",
			Help: "Total number of helper processes spawned",
		},
		[]string{"role"}, // "decoder", "audio"
	)

	ProcessesRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "termplay_helper_processes_registered_total",
			Help: "Total number of helper processes registered for teardown",
		},
	)

	ProcessesKilled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "termplay_helper_processes_killed_total",
			Help: "Total number of helper processes killed during teardown",
		},
	)
)

// Probe metrics
var (
	ProbeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "termplay_probe_duration_seconds",
			Help:    "Duration of source resolution probes in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ProbeCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "termplay_probe_cache_hits_total",
			Help: "Total number of probe results served from the cache",
		},
	)

	ProbeCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "termplay_probe_cache_misses_total",
			Help: "Total number of probe lookups that missed the cache",
		},
	)
)
