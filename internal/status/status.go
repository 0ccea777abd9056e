package status

import (
	"sync"
	"time"
)

// ProviderStatus is the outcome of the most recent provider reachability
// probe.
type ProviderStatus struct {
	Healthy   bool      `json:"healthy"`
	CheckedAt time.Time `json:"checkedAt"` // always UTC
	Error     string    `json:"error,omitempty"`
}

// Recorder keeps the latest probe outcome. Safe for concurrent use.
type Recorder struct {
	mu       sync.RWMutex
	status   ProviderStatus
	recorded bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record stores the outcome of a probe. A nil error marks the provider
// healthy.
func (r *Recorder) Record(err error) {
	s := ProviderStatus{
		Healthy:   err == nil,
		CheckedAt: time.Now().UTC(),
	}
	if err != nil {
		s.Error = err.Error()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = s
	r.recorded = true
}

// Latest returns the most recent probe outcome. The second return value is
// false until the first probe has completed.
func (r *Recorder) Latest() (ProviderStatus, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status, r.recorded
}
