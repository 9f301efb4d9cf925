// Package timeouts defines shared timeout constants used by command entry
// points.
package timeouts

import "time"

// TelemetryShutdown caps how long a command waits for pending spans to flush
// before it exits.
const TelemetryShutdown = 5 * time.Second
