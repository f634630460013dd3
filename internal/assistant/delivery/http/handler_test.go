package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/assistant"
	"task-assistant/internal/classifier"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
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

type mockAssistantUseCase struct {
	gotInput assistant.Input
	gotScope model.Scope
	out      assistant.Output
	err      error
}

func (m *mockAssistantUseCase) Process(ctx context.Context, sc model.Scope, input assistant.Input) (assistant.Output, error) {
	m.gotScope = sc
	m.gotInput = input
	if m.err != nil {
		return assistant.Output{}, m.err
	}
	return m.out, nil
}

func newTestRouter(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc)
	r.POST("/api/v1/messages", h.ProcessMessage)
	return r
}

func TestProcessMessage(t *testing.T) {
	t.Run("Chat Reply", func(t *testing.T) {
		uc := &mockAssistantUseCase{out: assistant.Output{
			TurnID: "turn-1",
			Mode:   classifier.ModeChat,
			Classification: classifier.Result{
				Mode:       classifier.ModeChat,
				Pattern:    classifier.PatternGreeting,
				Confidence: classifier.ConfidenceHigh,
			},
			Reply: "👋 Hello!",
		}}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/messages", strings.NewReader(`{"message": "Hello"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "u1")
		r.ServeHTTP(w, req)

		if w.Code != nethttp.StatusOK {
			t.Fatalf("unexpected status: %d body=%s", w.Code, w.Body.String())
		}
		if uc.gotInput.Text != "Hello" || uc.gotScope.UserID != "u1" {
			t.Errorf("unexpected usecase call: input=%+v scope=%+v", uc.gotInput, uc.gotScope)
		}

		var resp struct {
			ErrorCode int                    `json:"error_code"`
			Data      map[string]interface{} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("unexpected error code: %d", resp.ErrorCode)
		}
		if resp.Data["mode"] != "chat" || resp.Data["reply"] != "👋 Hello!" {
			t.Errorf("unexpected data: %v", resp.Data)
		}

		// Confidence is internal only.
		if strings.Contains(strings.ToLower(w.Body.String()), "confidence") {
			t.Errorf("confidence leaked into response: %s", w.Body.String())
		}
	})

	t.Run("Created Task In Response", func(t *testing.T) {
		uc := &mockAssistantUseCase{out: assistant.Output{
			TurnID: "turn-2",
			Mode:   classifier.ModeCreate,
			Reply:  "✅ Task created: **Buy groceries**",
			Task: &model.Task{
				ID:       "7025",
				Content:  "Buy groceries",
				Priority: 3,
				Labels:   []string{"personal"},
				URL:      "https://app.todoist.com/app/task/7025",
			},
		}}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/messages", strings.NewReader(`{"message": "Buy groceries - milk, bread, eggs"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != nethttp.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}

		var resp struct {
			Data processMessageResponse `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.Data.Task == nil || resp.Data.Task.ID != "7025" {
			t.Errorf("expected created task in response, got %+v", resp.Data.Task)
		}
	})

	t.Run("Malformed Body", func(t *testing.T) {
		r := newTestRouter(&mockAssistantUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/messages", strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != nethttp.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Provider Error Mapped To User Message", func(t *testing.T) {
		uc := &mockAssistantUseCase{err: task.ErrRateLimited}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/messages", strings.NewReader(`{"message": "What tasks do I have?"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != nethttp.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "rate limit exceeded") {
			t.Errorf("expected friendly rate limit message, got %s", w.Body.String())
		}
		if strings.Contains(w.Body.String(), "429") {
			t.Errorf("HTTP detail leaked into user message: %s", w.Body.String())
		}
	})
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"Authentication", task.ErrAuthentication, msgAuthentication},
		{"Rate Limited", task.ErrRateLimited, msgRateLimited},
		{"Validation", task.ErrValidation, msgValidation},
		{"Unavailable", task.ErrUnavailable, msgUnavailable},
		{"Unknown", context.DeadlineExceeded, msgUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userMessage(tt.err); got != tt.want {
				t.Errorf("userMessage(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
