package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/infrastructure/logger"
	"github.com/flownote/flownote/internal/ports"
)

// EventService handles calendar event operations
type EventService struct {
	eventRepo ports.EventRepository
	logger    *logger.Logger
}

// NewEventService creates a new event service
func NewEventService(eventRepo ports.EventRepository, logger *logger.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// CreateEvent creates a calendar event
func (s *EventService) CreateEvent(ctx context.Context, userID uuid.UUID, req ports.CreateEventRequest) (*entities.CalendarEvent, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &entities.ValidationError{Reason: "title is required"}
	}
	if !req.End.After(req.Start) {
		return nil, &entities.ValidationError{Reason: "end must be after start"}
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	event := &entities.CalendarEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     req.Title,
		Category:  category,
		Start:     req.Start,
		End:       req.End,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.Info("Event created", "event_id", event.ID, "title", event.Title)

	return event, nil
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(ctx context.Context, userID uuid.UUID, id string) (*entities.CalendarEvent, error) {
	event, err := s.eventRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("event not found: %w", err)
	}
	return event, nil
}

// UpdateEvent updates an event
func (s *EventService) UpdateEvent(ctx context.Context, userID uuid.UUID, id string, req ports.UpdateEventRequest) (*entities.CalendarEvent, error) {
	event, err := s.eventRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("event not found: %w", err)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Start != nil {
		event.Start = *req.Start
	}
	if req.End != nil {
		event.End = *req.End
	}
	if req.Notes != nil {
		event.Notes = req.Notes
	}
	if !event.End.After(event.Start) {
		return nil, &entities.ValidationError{Reason: "end must be after start"}
	}

	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.logger.Info("Event updated", "event_id", event.ID)

	return event, nil
}

// DeleteEvent deletes an event
func (s *EventService) DeleteEvent(ctx context.Context, userID uuid.UUID, id string) error {
	if _, err := s.eventRepo.GetByID(ctx, userID, id); err != nil {
		return fmt.Errorf("event not found: %w", err)
	}
	if err := s.eventRepo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.logger.Info("Event deleted", "event_id", id)

	return nil
}

// ListDay returns the events intersecting one calendar day.
func (s *EventService) ListDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]*entities.CalendarEvent, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	events, err := s.eventRepo.ListForDay(ctx, userID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
