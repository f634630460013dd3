package assistant

import (
	"task-assistant/internal/classifier"
	"task-assistant/internal/model"
)

// Input is one turn of free-form user input.
type Input struct {
	Text string
}

// Output is the assistant's reply for one turn. Classification is carried
// for logging and diagnostics; delivery layers must not expose the
// confidence tier to end users.
type Output struct {
	TurnID         string
	Mode           classifier.Mode
	Classification classifier.Result
	Reply          string

	// Task is set when a task was created this turn.
	Task *model.Task

	// Degraded marks a creation turn where extraction failed and the task
	// was saved with the raw input as its title.
	Degraded bool
}
