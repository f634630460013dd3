package task

import (
	"fmt"
	"strings"

	"task-assistant/internal/model"
)

// FormatTaskList renders tasks as markdown: a count header, bold titles,
// due dates with a calendar emoji, labels in italics, and a view link when
// the provider gave one. An empty list renders a friendly empty state.
func FormatTaskList(tasks []model.Task, filterDescription string) string {
	if len(tasks) == 0 {
		var sb strings.Builder
		sb.WriteString("You don't have any active tasks right now. ✨\n\n")
		if filterDescription != "" {
			fmt.Fprintf(&sb, "No tasks found %s.\n\n", filterDescription)
		}
		sb.WriteString("Try creating a task like:\n")
		sb.WriteString("- \"Buy groceries tomorrow\"\n")
		sb.WriteString("- \"Call dentist at 2pm\"\n")
		sb.WriteString("- \"Review project proposal\"")
		return sb.String()
	}

	itemWord := "items"
	if len(tasks) == 1 {
		itemWord = "item"
	}

	var sb strings.Builder
	if filterDescription != "" {
		fmt.Fprintf(&sb, "### Tasks %s (%d %s)\n\n", filterDescription, len(tasks), itemWord)
	} else {
		fmt.Fprintf(&sb, "### Your Tasks (%d %s)\n\n", len(tasks), itemWord)
	}

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		parts := []string{fmt.Sprintf("**%s**", titleOrDefault(t.Content))}

		if t.DueDate != "" {
			parts = append(parts, fmt.Sprintf("📅 %s", t.DueDate))
		}

		if len(t.Labels) > 0 {
			italics := make([]string, 0, len(t.Labels))
			for _, label := range t.Labels {
				italics = append(italics, fmt.Sprintf("_%s_", label))
			}
			parts = append(parts, strings.Join(italics, ", "))
		}

		line := strings.Join(parts, " · ")
		if url := TaskURL(t); url != "" {
			line += fmt.Sprintf(" · [View in Todoist](%s)", url)
		}
		lines = append(lines, "- "+line)
	}

	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}

// FormatTaskCreated renders the confirmation message after a task is created.
func FormatTaskCreated(t model.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "✅ Task created: **%s**", titleOrDefault(t.Content))

	if t.DueDate != "" {
		fmt.Fprintf(&sb, "\n📅 Due: %s", t.DueDate)
	} else if t.DueString != "" {
		fmt.Fprintf(&sb, "\n📅 Due: %s", t.DueString)
	}

	if len(t.Labels) > 0 {
		fmt.Fprintf(&sb, "\n🏷️ Labels: %s", strings.Join(t.Labels, ", "))
	}

	if url := TaskURL(t); url != "" {
		fmt.Fprintf(&sb, "\n\n[View in Todoist](%s)", url)
	}
	return sb.String()
}

func titleOrDefault(content string) string {
	if strings.TrimSpace(content) == "" {
		return "Untitled task"
	}
	return content
}
