// Package status keeps runtime counters for the advanced info panel
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the engine and the orchestrator
const (
	MetricMoves         = "moves"
	MetricMovesRejected = "moves_rejected"
	MetricTeleports     = "teleports"
	MetricHops          = "hops"
	MetricCreated       = "created"
	MetricDeleted       = "deleted"
	MetricRejected      = "rejected"
	MetricSaves         = "saves"
	MetricSaveErrors    = "save_errors"
	MetricSpectators    = "spectators"

	MetricSaveMillis = "save_ms"

	MetricLastSave = "last_save"
	MetricBackend  = "backend"
)

// Registry groups typed metric maps
// Writers cache the pointer returned by Get and update it without locking
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Inc adds one to an integer metric; nil registries are ignored
func (r *Registry) Inc(key string) {
	r.Add(key, 1)
}

// Add adds delta to an integer metric; nil registries are ignored
func (r *Registry) Add(key string, delta int64) {
	if r == nil {
		return
	}
	r.Ints.Get(key).Add(delta)
}

// TotalCount returns the number of registered metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "key=value" in key order, integers first
func (r *Registry) Lines() []string {
	if r == nil {
		return nil
	}
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.1f", key, v.Get()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	return lines
}
