package session

import (
	"context"
	"time"
)

// AttemptStore counts failed logins per client IP within a rolling window.
// Implementations must be safe for concurrent use.
type AttemptStore interface {
	// Blocked reports whether ip has exhausted its failure budget, and if
	// so how long until the window expires.
	Blocked(ctx context.Context, ip string) (bool, time.Duration, error)

	// RecordFailure counts one failed attempt for ip.
	RecordFailure(ctx context.Context, ip string) error

	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, ip string) error
}
