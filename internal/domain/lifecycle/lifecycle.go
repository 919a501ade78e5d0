// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as connection pings
// and graceful HTTP server shutdown.
const DefaultTimeout = 30 * time.Second
