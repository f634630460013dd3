package usecase

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/internal/task/repository"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	opt := repository.ListTasksOptions{
		Filter: input.Filter.Query,
		Label:  input.Filter.Label,
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return task.ListOutput{}, err
	}

	uc.l.Infof(ctx, "task.usecase.List: retrieved %d tasks for user=%s", len(tasks), sc.UserID)
	return task.ListOutput{
		Tasks:   tasks,
		Message: task.FormatTaskList(tasks, input.Filter.Description),
	}, nil
}
