package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"task-assistant/internal/model"
	"task-assistant/pkg/gemini"
)

// Extract parses text into a TaskCandidate via the LLM. The call runs under
// the configured timeout with at most one retry; timeouts and cancellation
// surface as *Error like every other failure.
func (s *Service) Extract(ctx context.Context, text string) (model.TaskCandidate, error) {
	key := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	if cand, ok := s.cache.Get(key); ok {
		s.l.Debugf(ctx, "Extract: cache hit for input of length %d", len(text))
		return cand, nil
	}

	req := &gemini.Request{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: BuildExtractionPrompt(text)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     extractionTemperature,
			MaxOutputTokens: extractionMaxTokens,
		},
	}

	var resp *gemini.Response
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err = s.generate(ctx, req)
		if err == nil {
			break
		}
		// The caller's context is gone; a retry cannot succeed and must
		// not create side effects after abandonment.
		if ctx.Err() != nil {
			break
		}
		if attempt < maxAttempts {
			s.l.Warnf(ctx, "Extract: attempt %d/%d failed, retrying: %v", attempt, maxAttempts, err)
		}
	}
	if err != nil {
		return model.TaskCandidate{}, &Error{Reason: ReasonCallFailed, Err: err}
	}

	raw := resp.Text()
	if strings.TrimSpace(raw) == "" {
		return model.TaskCandidate{}, &Error{Reason: ReasonEmptyResponse}
	}

	cand, perr := parseCandidate(raw)
	if perr != nil {
		s.l.Errorf(ctx, "Extract: failed to parse LLM response: %v (raw=%q)", perr, raw)
		return model.TaskCandidate{}, &Error{Reason: ReasonMalformed, Err: perr}
	}

	s.cache.Add(key, cand)
	return cand, nil
}

// generate runs one LLM call under the per-attempt timeout.
func (s *Service) generate(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.llm.GenerateContent(callCtx, req)
}

// candidatePayload is the tolerant wire shape for LLM output. Priority is
// accepted as a number, a numeric string, or null — anything else simply
// leaves it unset for the validator to default.
type candidatePayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    flexInt  `json:"priority"`
	DueString   string   `json:"due_string"`
	Labels      []string `json:"labels"`
}

func (p candidatePayload) toModel() model.TaskCandidate {
	return model.TaskCandidate{
		Title:       p.Title,
		Description: p.Description,
		Priority:    int(p.Priority),
		DueString:   p.DueString,
		Labels:      p.Labels,
	}
}

// parseCandidate extracts one TaskCandidate from raw LLM output. Models
// occasionally wrap the object in a one-element array despite the prompt;
// that case is accepted and the first element used.
func parseCandidate(raw string) (model.TaskCandidate, error) {
	cleaned := sanitizeJSONResponse(raw)

	if strings.HasPrefix(cleaned, "[") {
		var list []candidatePayload
		if err := json.Unmarshal([]byte(cleaned), &list); err != nil {
			return model.TaskCandidate{}, fmt.Errorf("unmarshal array: %w", err)
		}
		if len(list) == 0 {
			return model.TaskCandidate{}, errors.New("empty candidate array")
		}
		return list[0].toModel(), nil
	}

	var payload candidatePayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return model.TaskCandidate{}, fmt.Errorf("unmarshal object: %w", err)
	}
	return payload.toModel(), nil
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

// flexInt unmarshals from a JSON number, a numeric string, or null. Values
// that are none of those parse as 0 (unset) rather than failing the whole
// candidate.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(int(v))
	return nil
}
