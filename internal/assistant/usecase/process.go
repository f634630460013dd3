package usecase

import (
	"context"

	"github.com/google/uuid"

	"task-assistant/internal/assistant"
	"task-assistant/internal/classifier"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/internal/validator"
)

func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input assistant.Input) (assistant.Output, error) {
	res := classifier.Classify(input.Text)
	uc.l.Infof(ctx, "assistant.usecase.Process: mode=%s pattern=%s confidence=%s",
		res.Mode, res.Pattern, res.Confidence)

	out := assistant.Output{
		TurnID:         uuid.NewString(),
		Mode:           res.Mode,
		Classification: res,
	}

	switch res.Mode {
	case classifier.ModeChat:
		out.Reply = chatReply(res.Pattern)
		return out, nil

	case classifier.ModeRetrieve:
		listOut, err := uc.taskUC.List(ctx, sc, task.ListInput{Filter: deriveFilter(input.Text)})
		if err != nil {
			return assistant.Output{}, err
		}
		uc.l.Infof(ctx, "assistant.usecase.Process: retrieved %d tasks", len(listOut.Tasks))
		out.Reply = listOut.Message
		return out, nil

	default: // classifier.ModeCreate
		return uc.processCreate(ctx, sc, input, out)
	}
}

// processCreate runs extraction and persists the task. Extraction failures
// never abort the turn: the raw input becomes the task title and the turn is
// marked degraded.
func (uc *implUseCase) processCreate(ctx context.Context, sc model.Scope, input assistant.Input, out assistant.Output) (assistant.Output, error) {
	cand, err := uc.ex.Extract(ctx, input.Text)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.processCreate: extraction failed, saving raw input as title: %v", err)
		cand = model.TaskCandidate{}
		out.Degraded = true
	}

	validated := validator.Normalize(input.Text, cand)

	createOut, err := uc.taskUC.Create(ctx, sc, task.CreateInput{Task: validated})
	if err != nil {
		return assistant.Output{}, err
	}

	out.Task = &createOut.Task
	out.Reply = createOut.Message
	if out.Degraded {
		out.Reply += "\n\n_I couldn't work out all the details, so I saved your message as the task title. You can refine it in Todoist._"
	}
	return out, nil
}
