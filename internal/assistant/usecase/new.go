package usecase

import (
	"task-assistant/internal/assistant"
	"task-assistant/internal/extractor"
	"task-assistant/internal/task"
	pkgLog "task-assistant/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	ex     extractor.Extractor
	taskUC task.UseCase
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance.
func New(l pkgLog.Logger, ex extractor.Extractor, taskUC task.UseCase) *implUseCase {
	return &implUseCase{
		l:      l,
		ex:     ex,
		taskUC: taskUC,
	}
}
