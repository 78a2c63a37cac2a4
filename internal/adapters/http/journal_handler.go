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

// JournalHandler handles journal entry requests
type JournalHandler struct {
	journalService *services.JournalService
	logger         *logger.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService *services.JournalService, logger *logger.Logger) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		logger:         logger,
	}
}

// CreateEntry handles journal entry creation
func (h *JournalHandler) CreateEntry(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.CreateJournalEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.journalService.CreateEntry(c.Request().Context(), userID, req)
	if err != nil {
		var validationErr *entities.ValidationError
		if errors.As(err, &validationErr) {
			return echo.NewHTTPError(http.StatusBadRequest, validationErr.Reason)
		}
		h.logger.Error("Create journal entry failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create entry")
	}

	return c.JSON(http.StatusCreated, entry)
}

// GetEntry handles getting a journal entry by ID
func (h *JournalHandler) GetEntry(c echo.Context) error {
	userID := getUserIDFromContext(c)

	entry, err := h.journalService.GetEntry(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrEntryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Entry not found")
		}
		h.logger.Error("Get journal entry failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve entry")
	}

	return c.JSON(http.StatusOK, entry)
}

// UpdateEntry handles journal entry updates
func (h *JournalHandler) UpdateEntry(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.UpdateJournalEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.journalService.UpdateEntry(c.Request().Context(), userID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, entities.ErrEntryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Entry not found")
		}
		h.logger.Error("Update journal entry failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update entry")
	}

	return c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles journal entry deletion
func (h *JournalHandler) DeleteEntry(c echo.Context) error {
	userID := getUserIDFromContext(c)

	err := h.journalService.DeleteEntry(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrEntryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Entry not found")
		}
		h.logger.Error("Delete journal entry failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete entry")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Entry deleted"})
}

// ListEntries lists entries in a date window; defaults to the past 30 days.
func (h *JournalHandler) ListEntries(c echo.Context) error {
	userID := getUserIDFromContext(c)

	to := time.Now().UTC().AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -31)

	if fromStr := c.QueryParam("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid from parameter, expected YYYY-MM-DD")
		}
		from = parsed
	}
	if toStr := c.QueryParam("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid to parameter, expected YYYY-MM-DD")
		}
		to = parsed
	}

	entries, err := h.journalService.ListEntries(c.Request().Context(), userID, from, to)
	if err != nil {
		h.logger.Error("List journal entries failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve entries")
	}

	return c.JSON(http.StatusOK, entries)
}
