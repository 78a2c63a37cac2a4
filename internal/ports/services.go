package ports

import (
	"time"

	"github.com/flownote/flownote/internal/domain/entities"
)

// Request/Response Types

// Auth related types
type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
	Timezone    string  `json:"timezone" validate:"omitempty,max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int64          `json:"expires_in"`
	User        *entities.User `json:"user"`
}

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Task related types
type CreateTaskRequest struct {
	Title       string            `json:"title" validate:"required,max=500"`
	Description *string           `json:"description"`
	Priority    entities.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Effort      *entities.Effort  `json:"effort" validate:"omitempty,oneof=small medium large"`
	DueDate     *time.Time        `json:"due_date"`
	Tags        []string          `json:"tags"`
}

type UpdateTaskRequest struct {
	Title       *string            `json:"title" validate:"omitempty,max=500"`
	Description *string            `json:"description"`
	Priority    *entities.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Effort      *entities.Effort   `json:"effort" validate:"omitempty,oneof=small medium large"`
	DueDate     *time.Time         `json:"due_date"`
	Tags        []string           `json:"tags"`
	Completed   *bool              `json:"completed"`
}

// Event related types
type CreateEventRequest struct {
	Title    string    `json:"title" validate:"required,max=500"`
	Category string    `json:"category" validate:"omitempty,max=100"`
	Start    time.Time `json:"start" validate:"required"`
	End      time.Time `json:"end" validate:"required"`
	Notes    *string   `json:"notes"`
}

type UpdateEventRequest struct {
	Title *string    `json:"title" validate:"omitempty,max=500"`
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
	Notes *string    `json:"notes"`
}

// Schedule related types
type AllocateRequest struct {
	Day     string   `json:"day" validate:"required,datetime=2006-01-02"`
	TaskIDs []string `json:"task_ids"`
}

type SaveScheduleRequest struct {
	Blocks []entities.ScheduledBlock `json:"blocks" validate:"required"`
}

type SaveScheduleResponse struct {
	SavedCount int `json:"saved_count"`
}

// Assistant related types
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// Habit related types
type CreateHabitRequest struct {
	Name string  `json:"name" validate:"required,max=200"`
	Icon *string `json:"icon" validate:"omitempty,max=16"`
}

type HabitWithStreak struct {
	*entities.Habit
	Streak int `json:"streak"`
}

// Journal related types
type CreateJournalEntryRequest struct {
	Title       string    `json:"title" validate:"required,max=300"`
	Body        string    `json:"body"`
	EntryDate   time.Time `json:"entry_date" validate:"required"`
	Transcribed bool      `json:"transcribed"`
}

type UpdateJournalEntryRequest struct {
	Title *string `json:"title" validate:"omitempty,max=300"`
	Body  *string `json:"body"`
}
