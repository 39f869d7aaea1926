package utils

import (
	"context"
	"time"
)

// Pinger is implemented by backends that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of the configured storage backend.
type HealthStatus struct {
	Status    string    `json:"status"`
	Backend   string    `json:"backend"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// CheckHealth pings the backend once with the given timeout.
func CheckHealth(ctx context.Context, backend string, p Pinger, timeout time.Duration) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status := HealthStatus{Status: "ok", Backend: backend, CheckedAt: time.Now()}
	if err := p.Ping(ctx); err != nil {
		status.Status = "degraded"
		status.Error = err.Error()
	}
	return status
}
