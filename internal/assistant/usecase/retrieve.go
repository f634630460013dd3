package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"task-assistant/internal/task"
)

var (
	dueTodayRe    = regexp.MustCompile(`\b(due\s+)?today\b`)
	dueTomorrowRe = regexp.MustCompile(`\b(due\s+)?tomorrow\b`)
	overdueRe     = regexp.MustCompile(`\boverdue\b`)
	labelRe       = regexp.MustCompile(`\b(?:labeled?|tagged?|with\s+label)\s+["']?(\w+)["']?`)
)

// deriveFilter extracts listing filters from the query text with simple
// pattern matching. Retrieval never calls the LLM.
func deriveFilter(text string) task.Filter {
	lower := strings.ToLower(text)

	var f task.Filter
	switch {
	case overdueRe.MatchString(lower):
		f.Query = "overdue"
		f.Description = "overdue"
	case dueTodayRe.MatchString(lower):
		f.Query = "today"
		f.Description = "due today"
	case dueTomorrowRe.MatchString(lower):
		f.Query = "tomorrow"
		f.Description = "due tomorrow"
	}

	if m := labelRe.FindStringSubmatch(lower); m != nil {
		f.Label = m[1]
		f.Description = fmt.Sprintf("labeled '%s'", m[1])
	}
	return f
}
