package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a controllable clock for tests
// Every Now call advances by Step so successive entities get distinct timestamps
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	Step        time.Duration
}

// NewMockTimeProvider creates a mock clock starting at startTime, stepping one second per read
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
		Step:        time.Second,
	}
}

// Now returns the current mocked time, then advances it by Step
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.currentTime
	m.currentTime = m.currentTime.Add(m.Step)
	return now
}

// SetTime sets the next value Now returns
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
