package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flownote/flownote/internal/application/services"
	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/infrastructure/logger"
	"github.com/flownote/flownote/internal/ports"
)

// HabitHandler handles habit tracking requests
type HabitHandler struct {
	habitService *services.HabitService
	logger       *logger.Logger
}

// NewHabitHandler creates a new habit handler
func NewHabitHandler(habitService *services.HabitService, logger *logger.Logger) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
		logger:       logger,
	}
}

// CreateHabit handles habit creation
func (h *HabitHandler) CreateHabit(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.CreateHabitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	habit, err := h.habitService.CreateHabit(c.Request().Context(), userID, req)
	if err != nil {
		var validationErr *entities.ValidationError
		if errors.As(err, &validationErr) {
			return echo.NewHTTPError(http.StatusBadRequest, validationErr.Reason)
		}
		h.logger.Error("Create habit failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create habit")
	}

	return c.JSON(http.StatusCreated, habit)
}

// ListHabits returns the user's habits with current streaks
func (h *HabitHandler) ListHabits(c echo.Context) error {
	userID := getUserIDFromContext(c)

	habits, err := h.habitService.ListHabits(c.Request().Context(), userID, time.Now())
	if err != nil {
		h.logger.Error("List habits failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve habits")
	}

	return c.JSON(http.StatusOK, habits)
}

// CheckIn records today's check-in for a habit
func (h *HabitHandler) CheckIn(c echo.Context) error {
	userID := getUserIDFromContext(c)

	err := h.habitService.CheckIn(c.Request().Context(), userID, c.Param("id"), time.Now())
	if err != nil {
		if errors.Is(err, entities.ErrHabitNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Habit not found")
		}
		h.logger.Error("Habit check-in failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check in")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Checked in"})
}

// DeleteHabit handles habit deletion
func (h *HabitHandler) DeleteHabit(c echo.Context) error {
	userID := getUserIDFromContext(c)

	err := h.habitService.DeleteHabit(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrHabitNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Habit not found")
		}
		h.logger.Error("Delete habit failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete habit")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Habit deleted"})
}
