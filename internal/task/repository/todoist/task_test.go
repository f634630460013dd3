package todoist_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-assistant/internal/task"
	"task-assistant/internal/task/repository"
	"task-assistant/internal/task/repository/todoist"
)

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

func newRepo(serverURL string) repository.Repository {
	client := todoist.NewClient(serverURL, "test-token")
	return todoist.New(client, &mockLogger{})
}

func TestCreateTask(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/tasks" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			gotAuth = r.Header.Get("Authorization")
			json.NewDecoder(r.Body).Decode(&gotBody)

			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{
				"id":         "7025",
				"content":    "Buy groceries",
				"priority":   3,
				"due":        map[string]any{"date": "2026-08-30", "string": "tomorrow"},
				"labels":     []string{"personal", "errands"},
				"url":        "https://app.todoist.com/app/task/7025",
				"project_id": "220474322",
			})
		}))
		defer server.Close()

		repo := newRepo(server.URL)
		got, err := repo.CreateTask(context.Background(), repository.CreateTaskOptions{
			Content:   "Buy groceries",
			Priority:  3,
			DueString: "tomorrow",
			Labels:    []string{"personal", "errands"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotAuth != "Bearer test-token" {
			t.Errorf("unexpected auth header: %q", gotAuth)
		}
		if gotBody["content"] != "Buy groceries" || gotBody["due_string"] != "tomorrow" {
			t.Errorf("unexpected request body: %v", gotBody)
		}
		if got.ID != "7025" || got.DueDate != "2026-08-30" || got.DueString != "tomorrow" {
			t.Errorf("unexpected task: %+v", got)
		}
		if got.URL != "https://app.todoist.com/app/task/7025" {
			t.Errorf("unexpected url: %q", got.URL)
		}
	})

	t.Run("Bad Request Maps To Validation Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "content must not be empty", http.StatusBadRequest)
		}))
		defer server.Close()

		repo := newRepo(server.URL)
		_, err := repo.CreateTask(context.Background(), repository.CreateTaskOptions{})
		if !errors.Is(err, task.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("Unauthorized Maps To Authentication Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		repo := newRepo(server.URL)
		_, err := repo.CreateTask(context.Background(), repository.CreateTaskOptions{Content: "x"})
		if !errors.Is(err, task.ErrAuthentication) {
			t.Errorf("expected ErrAuthentication, got %v", err)
		}
	})

	t.Run("Server Error Retried Then Succeeds", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{"id": "1", "content": "x"})
		}))
		defer server.Close()

		repo := newRepo(server.URL)
		got, err := repo.CreateTask(context.Background(), repository.CreateTaskOptions{Content: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 2 {
			t.Errorf("expected 2 calls, got %d", calls)
		}
		if got.ID != "1" {
			t.Errorf("unexpected task: %+v", got)
		}
	})
}

func TestListTasks(t *testing.T) {
	t.Run("Filter Params Forwarded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/tasks" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			q := r.URL.Query()
			if q.Get("filter") != "today" || q.Get("label") != "work" {
				t.Errorf("unexpected query: %v", q)
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": "1", "content": "Review PR", "labels": []string{"work"}},
				{"id": "2", "content": "Standup", "due": map[string]any{"datetime": "2026-08-29T09:00:00Z"}},
			})
		}))
		defer server.Close()

		repo := newRepo(server.URL)
		got, err := repo.ListTasks(context.Background(), repository.ListTasksOptions{
			Filter: "today",
			Label:  "work",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(got))
		}
		if got[0].Content != "Review PR" {
			t.Errorf("unexpected first task: %+v", got[0])
		}
		if got[1].DueDate != "2026-08-29" {
			t.Errorf("expected date part of datetime, got %q", got[1].DueDate)
		}
	})

	t.Run("Rate Limit Exhausts Retries", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		repo := newRepo(server.URL)
		_, err := repo.ListTasks(context.Background(), repository.ListTasksOptions{})
		if !errors.Is(err, task.ErrRateLimited) {
			t.Errorf("expected ErrRateLimited, got %v", err)
		}
		if calls != 3 {
			t.Errorf("expected 3 attempts, got %d", calls)
		}
	})

	t.Run("Empty List", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("[]"))
		}))
		defer server.Close()

		repo := newRepo(server.URL)
		got, err := repo.ListTasks(context.Background(), repository.ListTasksOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no tasks, got %d", len(got))
		}
	})
}
