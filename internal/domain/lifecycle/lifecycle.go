// Package lifecycle holds shared values for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart and OnStop hooks such as DB pings and server shutdown.
const DefaultTimeout = 10 * time.Second
