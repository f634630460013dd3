package todoist

import (
	"context"
	"strings"

	"task-assistant/internal/model"
	"task-assistant/internal/task/repository"
	pkgLog "task-assistant/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new Todoist-backed repository.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	req := createTaskRequest{
		Content:     opt.Content,
		Description: opt.Description,
		Priority:    opt.Priority,
		DueString:   opt.DueString,
		Labels:      opt.Labels,
	}

	t, err := r.client.CreateTask(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "todoist repository: failed to create task: %v", err)
		return model.Task{}, err
	}

	r.l.Infof(ctx, "todoist repository: task created id=%s", t.ID)
	return apiToTask(t), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	apiTasks, err := r.client.ListTasks(ctx, opt.Label, opt.Filter, opt.ProjectID)
	if err != nil {
		r.l.Errorf(ctx, "todoist repository: failed to list tasks: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(apiTasks))
	for i := range apiTasks {
		tasks = append(tasks, apiToTask(&apiTasks[i]))
	}
	return tasks, nil
}

// apiToTask converts a Todoist API task object to the internal model.Task.
func apiToTask(t *apiTask) model.Task {
	var dueDate, dueString string
	if t.Due != nil {
		dueDate = t.Due.Date
		if dueDate == "" && t.Due.Datetime != "" {
			// Keep only the date part of an RFC 3339 datetime.
			dueDate, _, _ = strings.Cut(t.Due.Datetime, "T")
		}
		dueString = t.Due.String
	}

	return model.Task{
		ID:          t.ID,
		Content:     t.Content,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     dueDate,
		DueString:   dueString,
		Labels:      t.Labels,
		URL:         t.URL,
		ProjectID:   t.ProjectID,
		CreatedAt:   t.CreatedAt,
	}
}
