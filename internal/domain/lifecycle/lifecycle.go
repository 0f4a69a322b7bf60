// Package lifecycle holds shared start/stop limits for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown of servers, pools and workers.
const DefaultTimeout = 15 * time.Second
