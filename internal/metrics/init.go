package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	// --- Frame phases ---
	for _, phase := range []string{"read", "render", "write"} {
		FramePhaseDuration.WithLabelValues(phase)
	}

	// --- Helper process roles ---
	for _, role := range []string{"decoder", "audio"} {
		ProcessesSpawned.WithLabelValues(role)
	}
}
