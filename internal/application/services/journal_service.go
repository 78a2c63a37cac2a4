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

// JournalService handles journal entry operations
type JournalService struct {
	journalRepo ports.JournalRepository
	logger      *logger.Logger
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo ports.JournalRepository, logger *logger.Logger) *JournalService {
	return &JournalService{
		journalRepo: journalRepo,
		logger:      logger,
	}
}

// CreateEntry creates a journal entry
func (s *JournalService) CreateEntry(ctx context.Context, userID uuid.UUID, req ports.CreateJournalEntryRequest) (*entities.JournalEntry, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, &entities.ValidationError{Reason: "title is required"}
	}

	entry := &entities.JournalEntry{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Body:        req.Body,
		EntryDate:   req.EntryDate,
		Transcribed: req.Transcribed,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.journalRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	s.logger.Info("Journal entry created", "entry_id", entry.ID)

	return entry, nil
}

// GetEntry retrieves a journal entry
func (s *JournalService) GetEntry(ctx context.Context, userID uuid.UUID, id string) (*entities.JournalEntry, error) {
	entry, err := s.journalRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("journal entry not found: %w", err)
	}
	return entry, nil
}

// UpdateEntry updates a journal entry
func (s *JournalService) UpdateEntry(ctx context.Context, userID uuid.UUID, id string, req ports.UpdateJournalEntryRequest) (*entities.JournalEntry, error) {
	entry, err := s.journalRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("journal entry not found: %w", err)
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Body != nil {
		entry.Body = *req.Body
	}
	entry.UpdatedAt = time.Now()

	if err := s.journalRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	return entry, nil
}

// DeleteEntry deletes a journal entry
func (s *JournalService) DeleteEntry(ctx context.Context, userID uuid.UUID, id string) error {
	if _, err := s.journalRepo.GetByID(ctx, userID, id); err != nil {
		return fmt.Errorf("journal entry not found: %w", err)
	}
	if err := s.journalRepo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	s.logger.Info("Journal entry deleted", "entry_id", id)

	return nil
}

// ListEntries returns entries within the given date range.
func (s *JournalService) ListEntries(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entities.JournalEntry, error) {
	entries, err := s.journalRepo.List(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}
