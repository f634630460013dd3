package middleware

import (
	pkgLog "task-assistant/pkg/log"
)

// Middleware bundles the HTTP middlewares with their shared dependencies.
type Middleware struct {
	l           pkgLog.Logger
	rateLimiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds each client's
// request rate on the message endpoint.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:           l,
		rateLimiter: newRateLimiter(requestsPerMin),
	}
}
