package ports

import "context"

// LoginLimiter throttles repeated failed logins per account and source IP.
type LoginLimiter interface {
	// TooManyAttempts reports whether the account/IP pair has exhausted its
	// attempt budget for the current window.
	TooManyAttempts(ctx context.Context, username, ip string) (bool, error)
	// RecordFailure counts one failed attempt.
	RecordFailure(ctx context.Context, username, ip string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, username, ip string) error
}
