package core

import "time"

// TimeProvider abstracts clock access so ledger timestamps are controllable in
// tests. All persisted instants are UTC.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
