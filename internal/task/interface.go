package task

import (
	"context"

	"task-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create persists a validated task and returns it with a formatted
	// confirmation message.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List retrieves tasks matching the filter and returns them with a
	// formatted markdown listing.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
