package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flownote/flownote/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, userID uuid.UUID, id string) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	List(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*entities.Task, error)
}

// EventRepository defines the interface for calendar event operations
type EventRepository interface {
	Create(ctx context.Context, event *entities.CalendarEvent) error
	GetByID(ctx context.Context, userID uuid.UUID, id string) (*entities.CalendarEvent, error)
	Update(ctx context.Context, event *entities.CalendarEvent) error
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	// ListForDay returns events intersecting the half-open window
	// [dayStart, dayStart+24h).
	ListForDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) ([]*entities.CalendarEvent, error)
}

// HabitRepository defines the interface for habit data operations
type HabitRepository interface {
	Create(ctx context.Context, habit *entities.Habit) error
	GetByID(ctx context.Context, userID uuid.UUID, id string) (*entities.Habit, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	List(ctx context.Context, userID uuid.UUID) ([]*entities.Habit, error)
	AddCheckIn(ctx context.Context, habitID string, day time.Time) error
	ListCheckIns(ctx context.Context, habitID string) ([]time.Time, error)
}

// JournalRepository defines the interface for journal entry operations
type JournalRepository interface {
	Create(ctx context.Context, entry *entities.JournalEntry) error
	GetByID(ctx context.Context, userID uuid.UUID, id string) (*entities.JournalEntry, error)
	Update(ctx context.Context, entry *entities.JournalEntry) error
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	List(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entities.JournalEntry, error)
}

// RefreshNotifier receives a fire-and-forget signal after a successful save so
// listening views can refetch. Implementations must not block the caller.
type RefreshNotifier interface {
	DataChanged(userID uuid.UUID)
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	Completed *bool
	Priority  *entities.Priority
	Tag       *string
	Search    *string
	Limit     int
	Offset    int
}
