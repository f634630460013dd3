package model

// TaskCandidate is the unvalidated task structure produced by LLM extraction.
// Any field may be missing or malformed — LLM output is untrusted until it
// passes through the validator.
type TaskCandidate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    int      `json:"priority"`   // 1 (lowest) .. 4 (urgent); 0 = unset
	DueString   string   `json:"due_string"` // natural language, e.g. "tomorrow"
	Labels      []string `json:"labels"`
}

// ValidatedTask is a normalized TaskCandidate, safe to submit to the task
// tracking service. Title is guaranteed non-empty, priority is within bounds,
// labels are trimmed, lowercased and deduplicated.
type ValidatedTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    int      `json:"priority"`
	DueString   string   `json:"due_string"`
	Labels      []string `json:"labels"`
}

// Task represents a task stored in the external tracking service.
type Task struct {
	ID          string
	Content     string // task title
	Description string
	Priority    int
	DueDate     string // due date from the service, e.g. "2026-08-29"
	DueString   string // natural language due expression, if preserved
	Labels      []string
	URL         string // canonical link to view the task
	ProjectID   string
	CreatedAt   string // RFC3339 creation time string from the service
}
