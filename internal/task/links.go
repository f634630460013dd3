package task

import (
	"fmt"

	"task-assistant/internal/model"
)

const taskURLBase = "https://app.todoist.com/app/task"

// TaskURL returns the canonical link for a task. The provider's own url field
// wins when present; otherwise the link is built from the task ID. Returns ""
// when neither is available.
func TaskURL(t model.Task) string {
	if t.URL != "" {
		return t.URL
	}
	if t.ID == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", taskURLBase, t.ID)
}
