package ports

import "context"

// HealthChecker reports on a dependency the service needs to answer quotes
// (the account provider backend, the rate-limit store).
type HealthChecker interface {
	// Ping returns nil if the dependency is reachable.
	Ping(ctx context.Context) error
	// Name is the key used in the /health payload, e.g. "postgresql".
	Name() string
}
