package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
	pkgResponse "task-assistant/pkg/response"
)

// ProcessMessage is the Gin handler for one conversation turn.
// @Summary Process a message
// @Description Route a natural language message into chat, retrieval, or task creation and return the assistant's reply
// @Tags Assistant
// @Accept json
// @Produce json
// @Param body body processMessageRequest true "User message"
// @Success 200 {object} response.Resp{data=processMessageResponse} "Assistant reply"
// @Failure 400 {object} response.Resp "Malformed request body"
// @Router /api/v1/messages [post]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req processMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "assistant handler: failed to parse request: %v", err)
		pkgResponse.Error(c, errors.New("invalid request body"), nil)
		return
	}

	sc := model.Scope{
		UserID:   c.GetHeader("X-User-ID"),
		Username: c.GetHeader("X-Username"),
	}

	out, err := h.uc.Process(ctx, sc, assistant.Input{Text: req.Message})
	if err != nil {
		h.l.Errorf(ctx, "assistant handler: Process failed: %v", err)
		pkgResponse.Error(c, errors.New(userMessage(err)), nil)
		return
	}

	pkgResponse.OK(c, newProcessMessageResponse(out))
}
