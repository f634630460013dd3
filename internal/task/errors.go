package task

import "errors"

// Domain-specific errors for the task package. Repository implementations map
// provider status codes onto these so the layers above never see raw HTTP.
var (
	ErrAuthentication = errors.New("task provider rejected the API token")
	ErrRateLimited    = errors.New("task provider rate limit exceeded")
	ErrValidation     = errors.New("task provider rejected the task data")
	ErrNotFound       = errors.New("task provider resource not found")
	ErrUnavailable    = errors.New("task provider unavailable")
)
