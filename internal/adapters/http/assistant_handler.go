package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flownote/flownote/internal/application/services"
	"github.com/flownote/flownote/internal/infrastructure/logger"
	"github.com/flownote/flownote/internal/ports"
)

// AssistantHandler handles assistant chat requests
type AssistantHandler struct {
	assistantService *services.AssistantService
	logger           *logger.Logger
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService *services.AssistantService, logger *logger.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
		logger:           logger,
	}
}

// Chat sends a user message to the assistant and returns the reply plus any
// tasks the assistant created from it.
func (h *AssistantHandler) Chat(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.assistantService.Chat(c.Request().Context(), userID, req.Message)
	if err != nil {
		h.logger.Error("Assistant chat failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusBadGateway, "Assistant is unavailable")
	}

	return c.JSON(http.StatusOK, result)
}
