package http

import (
	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
)

// processMessageRequest is the body for POST /api/v1/messages.
type processMessageRequest struct {
	Message string `json:"message"`
}

// processMessageResponse is the reply payload. The classifier's confidence
// tier is intentionally absent: it is an internal signal, not part of the
// API surface.
type processMessageResponse struct {
	TurnID   string    `json:"turn_id"`
	Mode     string    `json:"mode"`
	Reply    string    `json:"reply"`
	Task     *taskItem `json:"task,omitempty"`
	Degraded bool      `json:"degraded,omitempty"`
}

type taskItem struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	Priority    int      `json:"priority"`
	DueDate     string   `json:"due_date,omitempty"`
	DueString   string   `json:"due_string,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	URL         string   `json:"url,omitempty"`
}

func newProcessMessageResponse(out assistant.Output) processMessageResponse {
	return processMessageResponse{
		TurnID:   out.TurnID,
		Mode:     string(out.Mode),
		Reply:    out.Reply,
		Task:     newTaskItem(out.Task),
		Degraded: out.Degraded,
	}
}

func newTaskItem(t *model.Task) *taskItem {
	if t == nil {
		return nil
	}
	return &taskItem{
		ID:          t.ID,
		Content:     t.Content,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		DueString:   t.DueString,
		Labels:      t.Labels,
		URL:         t.URL,
	}
}
