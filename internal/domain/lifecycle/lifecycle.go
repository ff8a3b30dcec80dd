// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a start or stop hook may block.
const DefaultTimeout = 10 * time.Second
