// Package metrics provides Prometheus instrumentation for the player.
//
// All metrics are prefixed with "termplay_" to avoid naming collisions
// with other applications. The endpoint is off by default: it is only
// served when TERMPLAY_METRICS_ADDR names a listen address, and playback
// never blocks on it.
//
// # Metric Categories
//
// ## Playback Metrics
//
// Track the frame pipeline:
//   - FramesRendered: Counter of frames written to the terminal
//   - FrameOverruns: Counter of frames that exceeded the frame interval
//   - FrameBytesRead: Counter of raw bytes read from the decoder
//   - FramePhaseDuration: Histogram of per-frame phase durations
//     (read/render/write)
//
// ## Session Gauges
//
// Updated periodically by the [Collector] from a [StatsProvider]:
//   - PlaybackFrames, PlaybackOverruns, PlaybackElapsedSeconds,
//     PlaybackEffectiveFPS
//
// ## Helper Process Metrics
//
// Track the decoder and audio sidecar:
//   - ProcessesSpawned: Counter by role (decoder/audio)
//   - ProcessesRegistered: Counter of PIDs registered for teardown
//   - ProcessesKilled: Counter of processes killed during teardown
//
// ## Probe Metrics
//
//   - ProbeDuration: Histogram of source probe durations
//   - ProbeCacheHits, ProbeCacheMisses: Probe cache effectiveness
//
// # Usage
//
// Metrics are automatically registered with the default Prometheus registry
// using promauto. [Serve] exposes them together with a health check:
//
//	go metrics.Serve(":9090")
//
// To record metrics from other packages, import this package and use the
// exported metric variables:
//
//	metrics.FramesRendered.Inc()
//	metrics.FramePhaseDuration.WithLabelValues("render").Observe(0.002)
//
// # Prometheus Queries
//
// Effective frame rate over the last minute:
//
//	rate(termplay_frames_rendered_total[1m])
//
// P95 render time:
//
//	histogram_quantile(0.95, sum(rate(termplay_frame_phase_duration_seconds_bucket{phase="render"}[5m])) by (le))
//
// Probe cache hit rate:
//
//	rate(termplay_probe_cache_hits_total[1h]) /
//	(rate(termplay_probe_cache_hits_total[1h]) + rate(termplay_probe_cache_misses_total[1h]))
package metrics
