package extractor

import "fmt"

// Extraction failure reasons. Network errors, timeouts, quota/auth errors and
// unparseable output are all surfaced through the same Error type; the router
// treats them uniformly.
const (
	ReasonCallFailed    = "llm_call_failed"
	ReasonEmptyResponse = "empty_llm_response"
	ReasonMalformed     = "malformed_llm_response"
)

// Error is returned for every extraction failure. It never escapes the router
// boundary: the creation path degrades to a raw-title task instead.
type Error struct {
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed (%s)", e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Err
}
