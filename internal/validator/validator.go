// Package validator normalizes task candidates extracted from untrusted LLM
// output into structures that are safe to submit to the task tracking
// service. Normalize is total: it never fails, and normalizing an already
// normalized candidate is a no-op.
package validator

import (
	"strings"

	"task-assistant/internal/model"
)

const (
	// TitleMaxRunes bounds the title, including the raw-input fallback.
	TitleMaxRunes = 120

	// MaxLabels bounds the label set; excess labels are dropped in
	// first-seen order.
	MaxLabels = 10

	// Priority ordinals match the tracking service: 1 lowest, 4 urgent.
	PriorityMin     = 1
	PriorityMax     = 4
	PriorityDefault = 3

	// fallbackTitle is used when both the candidate title and the raw
	// input are empty. The creation path never sees empty input (empty
	// turns classify as chat), but Normalize stays total regardless.
	fallbackTitle = "Untitled task"
)

// Normalize converts a TaskCandidate into a ValidatedTask. rawInput is the
// original user text, used as the title fallback when extraction produced
// none.
func Normalize(rawInput string, c model.TaskCandidate) model.ValidatedTask {
	title := truncate(strings.TrimSpace(c.Title), TitleMaxRunes)
	if title == "" {
		title = truncate(strings.TrimSpace(rawInput), TitleMaxRunes)
	}
	if title == "" {
		title = fallbackTitle
	}

	return model.ValidatedTask{
		Title:       title,
		Description: strings.TrimSpace(c.Description),
		Priority:    clampPriority(c.Priority),
		DueString:   strings.TrimSpace(c.DueString),
		Labels:      normalizeLabels(c.Labels),
	}
}

// clampPriority maps 0 (unset) to the default and clamps everything else to
// the valid ordinal range.
func clampPriority(p int) int {
	switch {
	case p == 0:
		return PriorityDefault
	case p < PriorityMin:
		return PriorityMin
	case p > PriorityMax:
		return PriorityMax
	default:
		return p
	}
}

// normalizeLabels trims, lowercases and deduplicates labels, preserving
// first-seen order and dropping everything past MaxLabels.
func normalizeLabels(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
		if len(out) == MaxLabels {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// truncate cuts s to at most max runes. Rune-safe: never splits a multibyte
// character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
