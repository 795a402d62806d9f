// Package error defines domain-specific errors for the Activity Log application.
package error

import "errors"

// ErrRateLimited is returned when a client exceeds the write-path rate limit.
var ErrRateLimited = errors.New("too many requests")

// ErrCodeRateLimited is the error code reported when a request is rate limited.
const ErrCodeRateLimited = "RATE-030001"
