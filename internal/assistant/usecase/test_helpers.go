package usecase

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

// mockLogger is a no-op logger for tests.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockExtractor replays a canned candidate or error and counts calls.
type mockExtractor struct {
	cand  model.TaskCandidate
	err   error
	calls int
}

func (m *mockExtractor) Extract(ctx context.Context, text string) (model.TaskCandidate, error) {
	m.calls++
	if m.err != nil {
		return model.TaskCandidate{}, m.err
	}
	return m.cand, nil
}

// mockTaskUseCase records inputs and replays canned outputs.
type mockTaskUseCase struct {
	createInput task.CreateInput
	createOut   task.CreateOutput
	createErr   error
	createCalls int

	listInput task.ListInput
	listOut   task.ListOutput
	listErr   error
	listCalls int
}

func (m *mockTaskUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	m.createCalls++
	m.createInput = input
	if m.createErr != nil {
		return task.CreateOutput{}, m.createErr
	}
	return m.createOut, nil
}

func (m *mockTaskUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	m.listCalls++
	m.listInput = input
	if m.listErr != nil {
		return task.ListOutput{}, m.listErr
	}
	return m.listOut, nil
}
