// Package lifecycle holds shared timing values for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as DB pings and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
