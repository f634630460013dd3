// Package classifier routes free-form user input into one of three
// conversation modes (chat, retrieve, create) using an ordered-precedence
// rule engine. Classification is pure and deterministic: no I/O, no LLM.
//
// Rule groups are evaluated in fixed order — greetings, retrieval,
// creation, default — and reordering them changes observable outcomes, so
// any change here must keep the precedence intact. The tie-break between
// retrieval and creation cues is the most error-prone rule: retrieval wins
// only when an explicit interrogative/query cue is present, because task
// descriptions frequently contain retrieval-looking nouns ("add milk to my
// list").
package classifier

import (
	"regexp"
	"strings"
)

type namedPattern struct {
	id string
	re *regexp.Regexp
}

var (
	// Greeting/meta group: salutations and capability questions.
	chatPatterns = []namedPattern{
		{PatternGreeting, regexp.MustCompile(`^(hi|hello|hey|greetings|yo)[\s!?.]*$`)},
		{PatternGreeting, regexp.MustCompile(`^good (morning|afternoon|evening)[\s!?.]*$`)},
		{PatternCapability, regexp.MustCompile(`\b(what can you do|how do you work|help me|show me how)\b`)},
		{PatternCapability, regexp.MustCompile(`\b(who are you|what are you)\b`)},
	}

	// Explicit interrogative/query cues. These are the only cues that let
	// retrieval win a tie against a creation cue.
	queryCueRes = []*regexp.Regexp{
		regexp.MustCompile(`^(what|which|do i have|is there|are there)\b`),
		regexp.MustCompile(`\b(show me|show my|what's on|whats on|what is on)\b`),
		regexp.MustCompile(`^(show|list|display|view|check|find|get|see)\b`),
	}

	// Task-domain nouns and their lexical variants.
	taskNounRe = regexp.MustCompile(`\b(task|tasks|todo|todos|to-do|to-dos|to do)\b`)

	// Possessive task-noun forms ("my tasks", "on my list"). "my task is ..."
	// is a task description, not a query, and is excluded below.
	possessiveRes = []*regexp.Regexp{
		regexp.MustCompile(`\bmy (tasks|todos?|to-dos?|to-do list|todo list|task list|list)\b`),
		regexp.MustCompile(`\bon my (list|plate|tasks?|todo)\b`),
	}
	possessiveTaskRe   = regexp.MustCompile(`\bmy task\b`)
	possessiveTaskIsRe = regexp.MustCompile(`\bmy task is\b`)

	// Due-date and label filter cues.
	filterCueRes = []*regexp.Regexp{
		regexp.MustCompile(`\b(due today|due tomorrow|due this week|overdue)\b`),
		regexp.MustCompile(`\btasks? (with|labeled|tagged)\b`),
		regexp.MustCompile(`\b(labeled|tagged) \S+`),
	}

	// Explicit creation cues: imperative openings and creation verbs paired
	// with task nouns.
	createCueRes = []*regexp.Regexp{
		regexp.MustCompile(`^(add|create|new|make|remind me to|i need to)\b`),
		regexp.MustCompile(`^todo:`),
		regexp.MustCompile(`\b(add|create|remind me)\b.*\b(task|todo|to-do|list)\b`),
	}
)

// Classify maps user input to a conversation mode. It is total: every input
// produces a Result, and identical inputs always produce identical Results.
func Classify(text string) Result {
	norm := normalize(text)
	if norm == "" {
		return Result{Mode: ModeChat, Pattern: PatternEmpty, Confidence: ConfidenceHigh}
	}

	for _, p := range chatPatterns {
		if p.re.MatchString(norm) {
			return Result{Mode: ModeChat, Pattern: p.id, Confidence: ConfidenceHigh}
		}
	}

	query := matchAny(queryCueRes, norm)
	noun := taskNounRe.MatchString(norm)
	possessive := hasPossessiveNoun(norm)
	filter := matchAny(filterCueRes, norm)
	create := matchAny(createCueRes, norm)

	// Retrieval with an explicit query cue outranks everything below,
	// including creation cues.
	if query && (noun || possessive || filter) {
		return Result{Mode: ModeRetrieve, Pattern: PatternRetrieveQuery, Confidence: ConfidenceHigh}
	}

	// No interrogative: creation cues win any remaining tie.
	if create {
		return Result{Mode: ModeCreate, Pattern: PatternCreateExplicit, Confidence: ConfidenceHigh}
	}

	// Single-cue retrieval forms.
	if possessive {
		return Result{Mode: ModeRetrieve, Pattern: PatternRetrieveNoun, Confidence: ConfidenceMedium}
	}
	if filter {
		return Result{Mode: ModeRetrieve, Pattern: PatternRetrieveFilt, Confidence: ConfidenceMedium}
	}

	// Undecided input is assumed to be a task description.
	return Result{Mode: ModeCreate, Pattern: PatternDefaultCreate, Confidence: ConfidenceLow}
}

func hasPossessiveNoun(norm string) bool {
	for _, re := range possessiveRes {
		if re.MatchString(norm) {
			return true
		}
	}
	// "my task" counts, "my task is to ..." does not.
	return possessiveTaskRe.MatchString(norm) && !possessiveTaskIsRe.MatchString(norm)
}

func matchAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// normalize lowercases and collapses all whitespace runs to single spaces.
func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
