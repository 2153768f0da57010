package registry

import (
	"errors"
	"os"
	"sync"

	"termplay/internal/logging"
	"termplay/internal/metrics"
)

// Registry records the process IDs of every helper spawned during playback
// (the decoder and the audio player) so that teardown can terminate them
// all. Entries are never removed: a PID whose process has already exited
// just makes the corresponding kill a no-op.
type Registry struct {
	mu   sync.Mutex
	pids []int
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register records pid for later termination.
func (r *Registry) Register(pid int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pids = append(r.pids, pid)
	metrics.ProcessesRegistered.Inc()
	logging.Debug("Registered helper process %d (%d total)", pid, len(r.pids))
}

// Len reports how many processes have been registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pids)
}

// TerminateAll force-kills every registered process. It is safe to call
// more than once and from multiple goroutines; processes that have already
// exited are skipped without complaint.
func (r *Registry) TerminateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, pid := range r.pids {
		proc, err := os.FindProcess(pid)
		if err != nil {
			// FindProcess cannot fail on Unix.
			logging.Debug("find process %d: %v", pid, err)
			continue
		}
		if err := proc.Kill(); err != nil {
			if !errors.Is(err, os.ErrProcessDone) {
				logging.Debug("kill process %d: %v", pid, err)
			}
			continue
		}
		metrics.ProcessesKilled.Inc()
		logging.Debug("Killed helper process %d", pid)
	}
}
