// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of
// long-lived handles (HTTP server, Mongo client).
const DefaultTimeout = 10 * time.Second
