package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"task-assistant/internal/task"
)

const (
	// DefaultBaseURL is the Todoist REST API v2 endpoint.
	DefaultBaseURL = "https://api.todoist.com/rest/v2"

	// maxRetries bounds retry attempts for 429 and 5xx responses.
	maxRetries = 3

	requestTimeout = 10 * time.Second
)

// Client is the HTTP wrapper for the Todoist REST API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new Todoist HTTP client. An empty baseURL selects the
// public API endpoint.
func NewClient(baseURL, apiToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// CreateTask creates a new task via POST /tasks.
func (c *Client) CreateTask(ctx context.Context, req createTaskRequest) (*apiTask, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create task request: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, "/tasks", nil, body)
	if err != nil {
		return nil, err
	}

	var t apiTask
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to decode create task response: %w", err)
	}
	return &t, nil
}

// ListTasks lists active tasks via GET /tasks with optional filters.
func (c *Client) ListTasks(ctx context.Context, label, filter, projectID string) ([]apiTask, error) {
	params := url.Values{}
	if label != "" {
		params.Set("label", label)
	}
	if filter != "" {
		params.Set("filter", filter)
	}
	if projectID != "" {
		params.Set("project_id", projectID)
	}

	raw, err := c.do(ctx, http.MethodGet, "/tasks", params, nil)
	if err != nil {
		return nil, err
	}

	var tasks []apiTask
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode list tasks response: %w", err)
	}
	return tasks, nil
}

// do runs one API call with retries. Requests hitting 429 or 5xx are retried
// with exponential backoff (1s, 2s); other statuses map straight to domain
// errors.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body []byte) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var lastErr error
	backoff := time.Second

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", task.ErrUnavailable, ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to build todoist request: %w", err)
		}
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
		if body != nil {
			httpReq.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			lastErr = fmt.Errorf("%w: %v", task.ErrUnavailable, err)
			continue
		}

		raw, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("%w: %v", task.ErrUnavailable, readErr)
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return raw, nil
		}

		lastErr = statusError(resp.StatusCode, raw)
		if !retryable(resp.StatusCode) {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// statusError maps a Todoist status code to a task domain error, keeping the
// response body for diagnostics.
func statusError(status int, body []byte) error {
	switch {
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", task.ErrValidation, string(body))
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", task.ErrAuthentication, status)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: status %d", task.ErrNotFound, status)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", task.ErrRateLimited, status)
	default:
		return fmt.Errorf("%w: status %d: %s", task.ErrUnavailable, status, string(body))
	}
}

// ---- Request/Response types scoped to this package ----

// createTaskRequest is the body for POST /tasks. Zero-valued optional fields
// are omitted so the API applies its own defaults.
type createTaskRequest struct {
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	DueString   string   `json:"due_string,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

// apiTask is the Todoist API task object.
type apiTask struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
	Priority    int      `json:"priority"`
	Due         *apiDue  `json:"due"`
	Labels      []string `json:"labels"`
	URL         string   `json:"url"`
	ProjectID   string   `json:"project_id"`
	CreatedAt   string   `json:"created_at"`
}

// apiDue is the Todoist due object attached to a task.
type apiDue struct {
	Date     string `json:"date"`
	Datetime string `json:"datetime"`
	String   string `json:"string"`
}
