package extractor

import (
	"context"

	"task-assistant/internal/model"
)

// Extractor converts free-form task descriptions into structured candidates.
type Extractor interface {
	// Extract parses text into a TaskCandidate. Every failure mode —
	// network error, timeout, quota, unparseable output — is returned as
	// a *Error; the candidate is only meaningful when err is nil.
	Extract(ctx context.Context, text string) (model.TaskCandidate, error)
}
