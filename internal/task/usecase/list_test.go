package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"task-assistant/internal/model"
	"task-assistant/internal/task"
)

func TestList(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("Success With Filter", func(t *testing.T) {
		repo := &mockRepository{
			listTasks: []model.Task{
				{ID: "1", Content: "Pay rent", DueDate: "2026-08-29"},
			},
		}
		uc := New(&mockLogger{}, repo)

		out, err := uc.List(context.Background(), sc, task.ListInput{
			Filter: task.Filter{Query: "today", Description: "due today"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.listOpt.Filter != "today" {
			t.Errorf("unexpected filter sent to repository: %q", repo.listOpt.Filter)
		}
		if len(out.Tasks) != 1 {
			t.Fatalf("expected 1 task, got %d", len(out.Tasks))
		}
		if !strings.HasPrefix(out.Message, "### Tasks due today (1 item)") {
			t.Errorf("unexpected message header:\n%s", out.Message)
		}
	})

	t.Run("Empty Result Formats Empty State", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepository{})

		out, err := uc.List(context.Background(), sc, task.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Message, "You don't have any active tasks right now.") {
			t.Errorf("unexpected message:\n%s", out.Message)
		}
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		repo := &mockRepository{listErr: task.ErrAuthentication}
		uc := New(&mockLogger{}, repo)

		_, err := uc.List(context.Background(), sc, task.ListInput{})
		if !errors.Is(err, task.ErrAuthentication) {
			t.Errorf("expected ErrAuthentication, got %v", err)
		}
	})
}
