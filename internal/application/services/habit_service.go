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

// HabitService handles habit tracking operations
type HabitService struct {
	habitRepo ports.HabitRepository
	logger    *logger.Logger
}

// NewHabitService creates a new habit service
func NewHabitService(habitRepo ports.HabitRepository, logger *logger.Logger) *HabitService {
	return &HabitService{
		habitRepo: habitRepo,
		logger:    logger,
	}
}

// CreateHabit creates a habit
func (s *HabitService) CreateHabit(ctx context.Context, userID uuid.UUID, req ports.CreateHabitRequest) (*entities.Habit, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &entities.ValidationError{Reason: "name is required"}
	}

	habit := &entities.Habit{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		Icon:      req.Icon,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	s.logger.Info("Habit created", "habit_id", habit.ID, "name", habit.Name)

	return habit, nil
}

// CheckIn records today's check-in for a habit.
func (s *HabitService) CheckIn(ctx context.Context, userID uuid.UUID, habitID string, now time.Time) error {
	if _, err := s.habitRepo.GetByID(ctx, userID, habitID); err != nil {
		return fmt.Errorf("habit not found: %w", err)
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := s.habitRepo.AddCheckIn(ctx, habitID, day); err != nil {
		return fmt.Errorf("failed to record check-in: %w", err)
	}

	s.logger.Info("Habit checked in", "habit_id", habitID, "day", day.Format("2006-01-02"))

	return nil
}

// ListHabits returns the user's habits with their current streaks.
func (s *HabitService) ListHabits(ctx context.Context, userID uuid.UUID, now time.Time) ([]ports.HabitWithStreak, error) {
	habits, err := s.habitRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	out := make([]ports.HabitWithStreak, 0, len(habits))
	for _, habit := range habits {
		checkIns, err := s.habitRepo.ListCheckIns(ctx, habit.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list check-ins for %s: %w", habit.ID, err)
		}
		habit.CheckIns = checkIns
		out = append(out, ports.HabitWithStreak{Habit: habit, Streak: habit.Streak(now)})
	}

	return out, nil
}

// DeleteHabit deletes a habit
func (s *HabitService) DeleteHabit(ctx context.Context, userID uuid.UUID, habitID string) error {
	if _, err := s.habitRepo.GetByID(ctx, userID, habitID); err != nil {
		return fmt.Errorf("habit not found: %w", err)
	}
	if err := s.habitRepo.Delete(ctx, userID, habitID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	s.logger.Info("Habit deleted", "habit_id", habitID)

	return nil
}
