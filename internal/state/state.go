// Package state holds the thin view-state controllers consumed by the CLI
// and TUI. Each controller wraps one repository, tracks a load status, and
// answers derived-state queries against the latest snapshot. Controllers
// never write to the store; repositories own all mutations.
package state

// Status is the lifecycle of the last load/refresh call.
type Status int

const (
	// StatusIdle means no load has been attempted yet.
	StatusIdle Status = iota
	// StatusLoading means a load or refresh is in flight.
	StatusLoading
	// StatusReady means the snapshot is usable (fresh or stale).
	StatusReady
	// StatusFailed means the last load failed and no data is available.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
