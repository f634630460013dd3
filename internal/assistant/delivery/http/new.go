package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/assistant"
	pkgLog "task-assistant/pkg/log"
)

// Handler is the interface for the assistant HTTP delivery handler.
type Handler interface {
	ProcessMessage(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc assistant.UseCase
}

// New creates a new assistant delivery handler.
func New(l pkgLog.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
