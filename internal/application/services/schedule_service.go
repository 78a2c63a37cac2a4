package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/infrastructure/logger"
	"github.com/flownote/flownote/internal/ports"
	"github.com/flownote/flownote/internal/scheduling"
)

// ScheduleService runs batch allocation and persists finalized blocks.
type ScheduleService struct {
	taskRepo  ports.TaskRepository
	eventRepo ports.EventRepository
	allocator *scheduling.Allocator
	notifier  ports.RefreshNotifier
	logger    *logger.Logger
}

// NewScheduleService creates a new schedule service
func NewScheduleService(taskRepo ports.TaskRepository, eventRepo ports.EventRepository, allocator *scheduling.Allocator, notifier ports.RefreshNotifier, logger *logger.Logger) *ScheduleService {
	return &ScheduleService{
		taskRepo:  taskRepo,
		eventRepo: eventRepo,
		allocator: allocator,
		notifier:  notifier,
		logger:    logger,
	}
}

// AllocateDay loads the user's open tasks, optionally narrowed to a subset of
// ids, and places each onto the given day. Nothing is persisted; the caller
// reviews and saves.
func (s *ScheduleService) AllocateDay(ctx context.Context, userID uuid.UUID, day time.Time, taskIDs []string) ([]entities.ScheduledBlock, error) {
	open := false
	tasks, err := s.taskRepo.List(ctx, userID, ports.TaskFilter{Completed: &open})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(taskIDs) > 0 {
		wanted := make(map[string]bool, len(taskIDs))
		for _, id := range taskIDs {
			wanted[id] = true
		}
		subset := tasks[:0]
		for _, t := range tasks {
			if wanted[t.ID] {
				subset = append(subset, t)
			}
		}
		tasks = subset
	}

	blocks := s.allocator.AllocateAll(tasks, day)
	s.logger.Info("Day allocated", "user_id", userID, "day", day.Format("2006-01-02"), "blocks", len(blocks))

	return blocks, nil
}

// DayEvents returns existing events in [dayStart, dayStart+1). They are shown
// alongside proposed blocks so the user can spot conflicts; the engine does
// not resolve them.
func (s *ScheduleService) DayEvents(ctx context.Context, userID uuid.UUID, day time.Time) ([]*entities.CalendarEvent, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	events, err := s.eventRepo.ListForDay(ctx, userID, dayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Save persists finalized blocks as calendar events, one independent write
// per block with no cross-block transaction. Writes that succeed stay on the
// calendar even when others fail; the aggregate failure carries the counts so
// the caller can report "N of M saved". On full success the refresh notifier
// fires and the saved count is returned.
func (s *ScheduleService) Save(ctx context.Context, userID uuid.UUID, blocks []entities.ScheduledBlock) (int, error) {
	valid := make([]entities.ScheduledBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.IsComplete() {
			valid = append(valid, b)
		}
	}
	if len(valid) == 0 {
		return 0, &entities.ValidationError{Reason: "nothing to schedule"}
	}

	// Resolve titles and notes up front so a missing task rejects the save
	// before any write happens.
	events := make([]*entities.CalendarEvent, len(valid))
	for i, b := range valid {
		task, err := s.taskRepo.GetByID(ctx, userID, b.TaskID)
		if err != nil {
			return 0, fmt.Errorf("block for unknown task %s: %w", b.TaskID, err)
		}
		events[i] = &entities.CalendarEvent{
			ID:       uuid.NewString(),
			UserID:   userID,
			Title:    task.Title,
			Category: entities.EventCategoryTaskBlock,
			Start:    b.Start,
			End:      b.End,
			Notes:    task.Description,
		}
	}

	var wg sync.WaitGroup
	errs := make([]error, len(events))
	for i, event := range events {
		wg.Add(1)
		go func(i int, event *entities.CalendarEvent) {
			defer wg.Done()
			if err := s.eventRepo.Create(ctx, event); err != nil {
				errs[i] = fmt.Errorf("create event %q: %w", event.Title, err)
			}
		}(i, event)
	}
	wg.Wait()

	var failures []error
	for _, err := range errs {
		if err != nil {
			failures = append(failures, err)
		}
	}

	succeeded := len(events) - len(failures)
	if len(failures) > 0 {
		s.logger.Error("Schedule save partially failed",
			"user_id", userID, "succeeded", succeeded, "failed", len(failures))
		return succeeded, &entities.PartialFailureError{
			SuccessCount: succeeded,
			FailureCount: len(failures),
			Errs:         failures,
		}
	}

	s.logger.Info("Schedule saved", "user_id", userID, "count", succeeded)
	if s.notifier != nil {
		s.notifier.DataChanged(userID)
	}

	return succeeded, nil
}
