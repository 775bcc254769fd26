// Package monitoring reports unexpected errors and panics to an external
// error tracker. The package-level helpers forward to the Monitor installed
// with Init and do nothing until one is installed.
package monitoring

import (
	"sync"
	"time"
)

// Monitor captures errors.
type Monitor interface {
	CaptureException(err error, tags map[string]string)
	Flush(timeout time.Duration)
}

// NopMonitor discards everything.
type NopMonitor struct{}

func (NopMonitor) CaptureException(error, map[string]string) {}
func (NopMonitor) Flush(time.Duration)                       {}

var mu sync.RWMutex

var current Monitor = NopMonitor{}

// Init installs m as the process-wide monitor. A nil m restores NopMonitor.
func Init(m Monitor) {
	mu.Lock()
	defer mu.Unlock()
	if m == nil {
		m = NopMonitor{}
	}
	current = m
}

// Current returns the installed monitor.
func Current() Monitor {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// CaptureException records err with optional tags. Nil errors are ignored.
func CaptureException(err error, tags map[string]string) {
	if err == nil {
		return
	}
	Current().CaptureException(err, tags)
}

// Recover must be deferred directly; it reports a panic and re-panics.
func Recover() {
	if r := recover(); r != nil {
		Current().CaptureException(panicError{value: r}, map[string]string{"panic": "true"})
		Current().Flush(2 * time.Second)
		panic(r)
	}
}

// Flush waits up to d for buffered events to be delivered.
func Flush(d time.Duration) {
	Current().Flush(d)
}

type panicError struct{ value any }

func (p panicError) Error() string { return "panic: " + toString(p.value) }

func toString(v any) string {
	switch t := v.(type) {
	case error:
		return t.Error()
	case string:
		return t
	default:
		return "non-error value"
	}
}
