// Package tracker counts analysis outcomes per component, for diagnostics
// and performance regression monitoring.
package tracker

import (
	"sync"
	"sync/atomic"
)

// Tracker tracks outcome counters per analysis component.
type Tracker struct {
	mu    sync.RWMutex
	stats map[string]*ComponentStats
}

// ComponentStats holds counters for one component.
// Fields are accessed atomically.
type ComponentStats struct {
	Runs       int64
	Rejections int64 // structured rejections (not closed, no valid triangle)
}

// New creates a new Tracker.
func New() *Tracker {
	return &Tracker{
		stats: make(map[string]*ComponentStats),
	}
}

// getStats returns the stats object for a component, creating it if needed.
func (t *Tracker) getStats(component string) *ComponentStats {
	t.mu.RLock()
	s, ok := t.stats[component]
	t.mu.RUnlock()
	if ok {
		return s
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	// Double check
	if s, ok = t.stats[component]; ok {
		return s
	}
	s = &ComponentStats{}
	t.stats[component] = s
	return s
}

// TrackRun increments the run counter.
func (t *Tracker) TrackRun(component string) {
	atomic.AddInt64(&t.getStats(component).Runs, 1)
}

// TrackRejection increments the rejection counter.
func (t *Tracker) TrackRejection(component string) {
	atomic.AddInt64(&t.getStats(component).Rejections, 1)
}

// Snapshot returns a copy of the current stats.
func (t *Tracker) Snapshot() map[string]ComponentStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]ComponentStats)
	for k, v := range t.stats {
		result[k] = ComponentStats{
			Runs:       atomic.LoadInt64(&v.Runs),
			Rejections: atomic.LoadInt64(&v.Rejections),
		}
	}
	return result
}
