package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flownote/flownote/internal/application/services"
	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/infrastructure/logger"
	"github.com/flownote/flownote/internal/ports"
)

// ScheduleHandler handles day allocation and schedule persistence
type ScheduleHandler struct {
	scheduleService *services.ScheduleService
	logger          *logger.Logger
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleService *services.ScheduleService, logger *logger.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// Allocate proposes time blocks for a day without persisting anything.
func (h *ScheduleHandler) Allocate(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.AllocateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	day, err := time.Parse("2006-01-02", req.Day)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid day, expected YYYY-MM-DD")
	}

	blocks, err := h.scheduleService.AllocateDay(c.Request().Context(), userID, day, req.TaskIDs)
	if err != nil {
		h.logger.Error("Allocate day failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to allocate day")
	}

	return c.JSON(http.StatusOK, blocks)
}

// Save persists finalized blocks as calendar events. A partial failure keeps
// the writes that succeeded and reports "N of M saved" to the caller.
func (h *ScheduleHandler) Save(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.SaveScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	saved, err := h.scheduleService.Save(c.Request().Context(), userID, req.Blocks)
	if err != nil {
		var validationErr *entities.ValidationError
		if errors.As(err, &validationErr) {
			return echo.NewHTTPError(http.StatusBadRequest, validationErr.Reason)
		}

		var partial *entities.PartialFailureError
		if errors.As(err, &partial) {
			total := partial.SuccessCount + partial.FailureCount
			return echo.NewHTTPError(http.StatusBadGateway,
				fmt.Sprintf("%d of %d blocks saved", partial.SuccessCount, total))
		}

		h.logger.Error("Save schedule failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save schedule")
	}

	return c.JSON(http.StatusOK, ports.SaveScheduleResponse{SavedCount: saved})
}
