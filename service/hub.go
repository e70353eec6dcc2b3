package service

import (
	"fmt"
	"log"
	"sync"
)

// Hub runs a fixed set of services through their lifecycle
// Services start in registration order and stop in reverse
type Hub struct {
	mu       sync.Mutex
	services []Service
	started  int
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{}
}

// Register appends svc; names must be unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.services {
		if s.Name() == svc.Name() {
			return fmt.Errorf("service already registered: %s", svc.Name())
		}
	}
	h.services = append(h.services, svc)
	return nil
}

// InitAll passes args to every service
// On failure the services already configured are stopped in reverse
func (h *Hub) InitAll(args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, svc := range h.services {
		if err := svc.Init(args...); err != nil {
			stopReverse(h.services[:i])
			return fmt.Errorf("service %s init: %w", svc.Name(), err)
		}
	}
	return nil
}

// StartAll starts every service
// On failure the services already started are stopped and the hub is left idle
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = 0
	for i, svc := range h.services {
		if err := svc.Start(); err != nil {
			stopReverse(h.services[:i])
			h.started = 0
			return fmt.Errorf("service %s start: %w", svc.Name(), err)
		}
		h.started = i + 1
	}
	return nil
}

// StopAll stops the started services in reverse order
// Errors are logged so every service gets its Stop
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	stopReverse(h.services[:h.started])
	h.started = 0
}

func stopReverse(svcs []Service) {
	for i := len(svcs) - 1; i >= 0; i-- {
		if err := svcs[i].Stop(); err != nil {
			log.Printf("service %s stop: %v", svcs[i].Name(), err)
		}
	}
}
