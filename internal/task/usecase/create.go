package usecase

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/internal/task/repository"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	opt := repository.CreateTaskOptions{
		Content:     input.Task.Title,
		Description: input.Task.Description,
		Priority:    input.Task.Priority,
		DueString:   input.Task.DueString,
		Labels:      input.Task.Labels,
	}

	created, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Create: created task id=%s for user=%s", created.ID, sc.UserID)
	return task.CreateOutput{
		Task:    created,
		Message: task.FormatTaskCreated(created),
	}, nil
}
