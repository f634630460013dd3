package repository

import (
	"context"

	"task-assistant/internal/model"
)

// Repository is the interface for task data access operations.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
