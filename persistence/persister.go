package persistence

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/boxworld/engine"
	"github.com/lixenwraith/boxworld/status"
)

// Persister saves and loads a world through a Store
type Persister struct {
	store   Store
	metrics *status.Registry
}

// NewPersister wraps store; metrics may be nil
func NewPersister(store Store, metrics *status.Registry) *Persister {
	if metrics != nil {
		metrics.Strings.Get(status.MetricBackend).Store(store.Name())
	}
	return &Persister{store: store, metrics: metrics}
}

// Load restores w from the store
// Returns false with nil error when no document exists; on any error w is left untouched
func (p *Persister) Load(ctx context.Context, w *engine.World) (bool, error) {
	data, err := p.store.Read(ctx)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", p.store.Name(), err)
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return false, err
	}

	if dropped := Restore(w, doc); dropped > 0 {
		log.Printf("persistence: dropped %d duplicate entities on load", dropped)
	}
	return true, nil
}

// Save writes a snapshot of w; failures leave in-memory state untouched
func (p *Persister) Save(ctx context.Context, w *engine.World) error {
	start := time.Now()
	data, err := EncodeDocument(Snapshot(w))
	if err == nil {
		err = p.store.Write(ctx, data)
	}
	if err != nil {
		p.metrics.Inc(status.MetricSaveErrors)
		return fmt.Errorf("save %s: %w", p.store.Name(), err)
	}

	p.metrics.Inc(status.MetricSaves)
	if p.metrics != nil {
		p.metrics.Floats.Get(status.MetricSaveMillis).Set(float64(time.Since(start).Microseconds()) / 1000)
		p.metrics.Strings.Get(status.MetricLastSave).Store(time.Now().Format("15:04:05"))
	}
	return nil
}

// Close releases the store
func (p *Persister) Close() error {
	return p.store.Close()
}
