package service

// Service is a long-lived subsystem owned by the Hub: the audio speaker, the spectator listener
//
// Lifecycle: construct, Init(args...), Start, run, Stop
type Service interface {
	// Name identifies the service in logs and errors; unique within a Hub
	Name() string

	// Init configures the service, picking the args it understands
	Init(args ...any) error

	// Start acquires the service's resources
	Start() error

	// Stop releases resources; must be idempotent
	Stop() error
}
