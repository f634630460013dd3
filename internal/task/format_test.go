package task_test

import (
	"strings"
	"testing"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

func TestFormatTaskList(t *testing.T) {
	t.Run("Multiple Tasks", func(t *testing.T) {
		tasks := []model.Task{
			{ID: "1", Content: "Buy groceries", DueDate: "2026-01-15", Labels: []string{"personal"}},
			{ID: "2", Content: "Review PR", Labels: []string{"work"}},
		}

		got := task.FormatTaskList(tasks, "")

		if !strings.HasPrefix(got, "### Your Tasks (2 items)") {
			t.Errorf("unexpected header: %q", got)
		}
		if !strings.Contains(got, "- **Buy groceries** · 📅 2026-01-15 · _personal_") {
			t.Errorf("missing first task line in:\n%s", got)
		}
		if !strings.Contains(got, "- **Review PR** · _work_") {
			t.Errorf("missing second task line in:\n%s", got)
		}
		if !strings.Contains(got, "[View in Todoist](https://app.todoist.com/app/task/1)") {
			t.Errorf("missing view link in:\n%s", got)
		}
	})

	t.Run("Single Task Uses Singular", func(t *testing.T) {
		got := task.FormatTaskList([]model.Task{{ID: "1", Content: "Only one"}}, "")
		if !strings.HasPrefix(got, "### Your Tasks (1 item)") {
			t.Errorf("unexpected header: %q", got)
		}
	})

	t.Run("Filter Description In Header", func(t *testing.T) {
		got := task.FormatTaskList([]model.Task{{ID: "1", Content: "Pay rent"}}, "due today")
		if !strings.HasPrefix(got, "### Tasks due today (1 item)") {
			t.Errorf("unexpected header: %q", got)
		}
	})

	t.Run("Empty List", func(t *testing.T) {
		got := task.FormatTaskList(nil, "")
		if !strings.Contains(got, "You don't have any active tasks right now.") {
			t.Errorf("missing empty state in:\n%s", got)
		}
		if !strings.Contains(got, "Try creating a task like:") {
			t.Errorf("missing suggestions in:\n%s", got)
		}
	})

	t.Run("Empty List With Filter", func(t *testing.T) {
		got := task.FormatTaskList(nil, "labeled 'work'")
		if !strings.Contains(got, "No tasks found labeled 'work'.") {
			t.Errorf("missing filter note in:\n%s", got)
		}
	})

	t.Run("Provider URL Preferred", func(t *testing.T) {
		tasks := []model.Task{{ID: "9", Content: "X", URL: "https://app.todoist.com/app/task/custom-9"}}
		got := task.FormatTaskList(tasks, "")
		if !strings.Contains(got, "(https://app.todoist.com/app/task/custom-9)") {
			t.Errorf("expected provider url in:\n%s", got)
		}
	})

	t.Run("Blank Content Falls Back", func(t *testing.T) {
		got := task.FormatTaskList([]model.Task{{ID: "1", Content: "  "}}, "")
		if !strings.Contains(got, "**Untitled task**") {
			t.Errorf("expected fallback title in:\n%s", got)
		}
	})
}

func TestFormatTaskCreated(t *testing.T) {
	t.Run("Full Task", func(t *testing.T) {
		got := task.FormatTaskCreated(model.Task{
			ID:      "42",
			Content: "Finish project report",
			DueDate: "2026-09-04",
			Labels:  []string{"work", "urgent"},
		})

		if !strings.Contains(got, "✅ Task created: **Finish project report**") {
			t.Errorf("missing confirmation in:\n%s", got)
		}
		if !strings.Contains(got, "📅 Due: 2026-09-04") {
			t.Errorf("missing due date in:\n%s", got)
		}
		if !strings.Contains(got, "🏷️ Labels: work, urgent") {
			t.Errorf("missing labels in:\n%s", got)
		}
		if !strings.Contains(got, "[View in Todoist](https://app.todoist.com/app/task/42)") {
			t.Errorf("missing link in:\n%s", got)
		}
	})

	t.Run("Due String When Date Unresolved", func(t *testing.T) {
		got := task.FormatTaskCreated(model.Task{ID: "1", Content: "Call dentist", DueString: "tomorrow"})
		if !strings.Contains(got, "📅 Due: tomorrow") {
			t.Errorf("expected natural due string in:\n%s", got)
		}
	})

	t.Run("Minimal Task", func(t *testing.T) {
		got := task.FormatTaskCreated(model.Task{Content: "Bare task"})
		if strings.Contains(got, "📅") || strings.Contains(got, "🏷️") || strings.Contains(got, "View in Todoist") {
			t.Errorf("unexpected optional sections in:\n%s", got)
		}
	})
}

func TestTaskURL(t *testing.T) {
	if got := task.TaskURL(model.Task{URL: "https://example.com/t/1", ID: "1"}); got != "https://example.com/t/1" {
		t.Errorf("expected provider url, got %q", got)
	}
	if got := task.TaskURL(model.Task{ID: "12345"}); got != "https://app.todoist.com/app/task/12345" {
		t.Errorf("unexpected constructed url: %q", got)
	}
	if got := task.TaskURL(model.Task{}); got != "" {
		t.Errorf("expected empty url, got %q", got)
	}
}
