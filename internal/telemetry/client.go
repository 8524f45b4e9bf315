// Package telemetry provides anonymous usage tracking via PostHog.
package telemetry

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/posthog/posthog-go"
)

// PostHogAPIKey is set at compile time via ldflags.
var PostHogAPIKey string

// Client interface for telemetry operations.
type Client interface {
	Track(event string, properties map[string]interface{})
	Close()

	TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64)
	TrackCLIError(commandName, errorType string)
	TrackSyncCompleted(family string, rows int, durationMs int64)
	TrackSyncFailed(family, errorType string)
	TrackDeletePerformed(family string, ok bool)
	TrackStaleFallbackServed(rows int)
	TrackAppStarted(mode string)
	TrackAppExited(mode string, sessionDurationMs int64)
}

// posthogClient wraps the PostHog SDK.
type posthogClient struct {
	client    posthog.Client
	sessionID string
	mu        sync.Mutex
}

// noopClient does nothing (for disabled telemetry).
type noopClient struct{}

// IsEnabled returns true if telemetry is enabled.
// Telemetry is opt-out: enabled unless WASTRA_TELEMETRY_TRACKING_ENABLED=false.
func IsEnabled() bool {
	return os.Getenv("WASTRA_TELEMETRY_TRACKING_ENABLED") != "false" && PostHogAPIKey != ""
}

// New creates a new telemetry client. Each session gets a fresh anonymous
// UUID; nothing persistent or personal is tracked.
func New() Client {
	if !IsEnabled() {
		return &noopClient{}
	}

	client, err := posthog.NewWithConfig(PostHogAPIKey, posthog.Config{
		Endpoint:  "https://us.i.posthog.com",
		BatchSize: 250,
		Interval:  5 * time.Second,
	})
	if err != nil {
		return &noopClient{}
	}

	return &posthogClient{
		client:    client,
		sessionID: uuid.New().String(),
	}
}

// Track sends an event to PostHog.
func (c *posthogClient) Track(event string, properties map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.client.Enqueue(posthog.Capture{
		DistinctId: c.sessionID,
		Event:      event,
		Properties: properties,
	})
}

// Close flushes and shuts down the PostHog client.
func (c *posthogClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.client.Close()
}

func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	c.Track("cli_command_executed", map[string]interface{}{
		"command_name": commandName,
		"has_flags":    hasFlags,
		"duration_ms":  durationMs,
	})
}

func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	c.Track("cli_error", map[string]interface{}{
		"command_name": commandName,
		"error_type":   errorType,
	})
}

func (c *posthogClient) TrackSyncCompleted(family string, rows int, durationMs int64) {
	c.Track("sync_completed", map[string]interface{}{
		"family":      family,
		"rows":        rows,
		"duration_ms": durationMs,
	})
}

func (c *posthogClient) TrackSyncFailed(family, errorType string) {
	c.Track("sync_failed", map[string]interface{}{
		"family":     family,
		"error_type": errorType,
	})
}

func (c *posthogClient) TrackDeletePerformed(family string, ok bool) {
	c.Track("delete_performed", map[string]interface{}{
		"family":  family,
		"success": ok,
	})
}

func (c *posthogClient) TrackStaleFallbackServed(rows int) {
	c.Track("stale_fallback_served", map[string]interface{}{
		"rows": rows,
	})
}

func (c *posthogClient) TrackAppStarted(mode string) {
	c.Track("app_started", map[string]interface{}{
		"mode": mode,
	})
}

func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64) {
	c.Track("app_exited", map[string]interface{}{
		"mode":                mode,
		"session_duration_ms": sessionDurationMs,
	})
}

// noopClient implementations.
func (n *noopClient) Track(string, map[string]interface{})                 {}
func (n *noopClient) Close()                                               {}
func (n *noopClient) TrackCLICommandExecuted(string, bool, int64)          {}
func (n *noopClient) TrackCLIError(string, string)                         {}
func (n *noopClient) TrackSyncCompleted(string, int, int64)                {}
func (n *noopClient) TrackSyncFailed(string, string)                       {}
func (n *noopClient) TrackDeletePerformed(string, bool)                    {}
func (n *noopClient) TrackStaleFallbackServed(int)                         {}
func (n *noopClient) TrackAppStarted(string)                               {}
func (n *noopClient) TrackAppExited(string, int64)                         {}
