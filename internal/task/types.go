package task

import "task-assistant/internal/model"

// Filter narrows a task listing. Query uses the provider's filter syntax
// (e.g. "today | overdue"); Description is the human-readable form shown in
// the reply header (e.g. "due today").
type Filter struct {
	Query       string
	Label       string
	Description string
}

// CreateInput wraps a validated task ready to be persisted.
type CreateInput struct {
	Task model.ValidatedTask
}

// CreateOutput is the result of creating a task.
type CreateOutput struct {
	Task    model.Task
	Message string
}

// ListInput carries the optional filter for a task listing.
type ListInput struct {
	Filter Filter
}

// ListOutput is the result of listing tasks.
type ListOutput struct {
	Tasks   []model.Task
	Message string
}
