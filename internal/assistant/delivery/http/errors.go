package http

import (
	"errors"

	"task-assistant/internal/task"
)

// User-facing error messages. Provider failures are translated into
// actionable text instead of leaking HTTP details.
const (
	msgAuthentication = "🔑 Todoist rejected the API token. Please check the server configuration."
	msgRateLimited    = "⚠️ Todoist rate limit exceeded. Please wait a moment before trying again."
	msgValidation     = "⚠️ Todoist rejected the task data. Please rephrase and try again."
	msgUnavailable    = "❌ Unable to reach Todoist right now. Please try again later."
)

// userMessage maps a task domain error to a user-facing message.
func userMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrAuthentication):
		return msgAuthentication
	case errors.Is(err, task.ErrRateLimited):
		return msgRateLimited
	case errors.Is(err, task.ErrValidation):
		return msgValidation
	default:
		return msgUnavailable
	}
}
