package assistant

import (
	"context"

	"task-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain. It
// is the single entry point for a conversation turn: classify the input,
// dispatch to the right handler, and produce a user-facing reply.
type UseCase interface {
	Process(ctx context.Context, sc model.Scope, input Input) (Output, error)
}
