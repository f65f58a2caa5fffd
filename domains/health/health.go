package health

import "context"

// Status is the service health snapshot returned by the health endpoint.
// SessionStore is only reported when an external store backs the sessions.
type Status struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	Provider     string `json:"provider"`
	Documents    int    `json:"documents"`
	SessionStore string `json:"session_store,omitempty"`
}

// Pinger reports reachability of an external dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

type IHealthUsecase interface {
	Check(ctx context.Context) Status
}
