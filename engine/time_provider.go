package engine

import "time"

// Clock supplies creation timestamps
type Clock interface {
	Now() time.Time
}

// TimeProvider is the wall clock
type TimeProvider struct{}

// NewTimeProvider creates a wall clock
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current UTC time
func (p *TimeProvider) Now() time.Time {
	return time.Now().UTC()
}
