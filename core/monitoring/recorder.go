package monitoring

import (
	"sync"
	"time"
)

// Captured is one error seen by a Recorder.
type Captured struct {
	Err  error
	Tags map[string]string
}

// Recorder keeps captured errors in memory. It is used by tests and by the
// scenario runner to surface reported failures.
type Recorder struct {
	mu      sync.Mutex
	events  []Captured
	flushes int
}

func (r *Recorder) CaptureException(err error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Captured{Err: err, Tags: tags})
}

func (r *Recorder) Flush(time.Duration) {
	r.mu.Lock()
	r.flushes++
	r.mu.Unlock()
}

// Events returns a copy of the captured errors.
func (r *Recorder) Events() []Captured {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Captured, len(r.events))
	copy(out, r.events)
	return out
}
