package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrHabitNotFound   = errors.New("habit not found")
	ErrEntryNotFound   = errors.New("journal entry not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidPriority = errors.New("invalid priority")
)

// Enums and types
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Effort is a coarse sizing category used to derive a block duration.
// Tasks without an effort (nil pointer on Task) are physical activities and
// never receive an automatic duration.
type Effort string

const (
	EffortSmall  Effort = "small"
	EffortMedium Effort = "medium"
	EffortLarge  Effort = "large"
)

// PreferenceKind labels how a time preference was derived from a title.
type PreferenceKind string

const (
	PreferenceSpecific  PreferenceKind = "specific"
	PreferenceMorning   PreferenceKind = "morning"
	PreferenceAfternoon PreferenceKind = "afternoon"
	PreferenceEvening   PreferenceKind = "evening"
)

// User represents a FlowNote account.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	DisplayName  *string    `json:"display_name" db:"display_name"`
	Timezone     string     `json:"timezone" db:"timezone"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" db:"deleted_at"`
}

// Task is a unit of work. Titles may embed a free-text time hint
// ("call client at 10:30am") that the scheduling package extracts.
type Task struct {
	ID          string     `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Priority    Priority   `json:"priority" db:"priority"`
	Effort      *Effort    `json:"effort" db:"effort"`
	DueDate     *time.Time `json:"due_date" db:"due_date"`
	Tags        []string   `json:"tags" db:"tags"`
	Completed   bool       `json:"completed" db:"completed"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// IsPhysical reports whether the task is a physical activity, which has no
// fixed effort and is never assigned an automatic duration.
func (t *Task) IsPhysical() bool {
	if t.Effort == nil {
		return true
	}
	return t.HasTag("physical")
}

// HasTag reports whether the task carries the given tag.
func (t *Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// TimePreference is a scheduling hint extracted from a task title.
// It is ephemeral and never persisted.
type TimePreference struct {
	PreferredHour    int
	PreferredMinutes int
	Kind             PreferenceKind
}

// ScheduledBlock is a task placed on a day's calendar as a time block.
// Blocks live only in an editing session until saved as CalendarEvents.
type ScheduledBlock struct {
	TaskID        string    `json:"task_id"`
	Day           time.Time `json:"day"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours float64   `json:"duration_hours"`
}

// SetStart moves the block start and recomputes the derived duration.
func (b *ScheduledBlock) SetStart(start time.Time) {
	b.Start = start
	b.DurationHours = b.End.Sub(b.Start).Hours()
}

// SetEnd moves the block end and recomputes the derived duration.
func (b *ScheduledBlock) SetEnd(end time.Time) {
	b.End = end
	b.DurationHours = b.End.Sub(b.Start).Hours()
}

// ClipToDay clamps the block end to 23:59:00 of its day so a block never
// crosses midnight. The derived duration is recomputed when clipping occurs.
func (b *ScheduledBlock) ClipToDay() {
	dayEnd := time.Date(b.Day.Year(), b.Day.Month(), b.Day.Day(), 23, 59, 0, 0, b.Day.Location())
	if b.End.After(dayEnd) {
		b.SetEnd(dayEnd)
	}
}

// IsComplete reports whether the block has both endpoints set.
func (b *ScheduledBlock) IsComplete() bool {
	return !b.Start.IsZero() && !b.End.IsZero()
}

// EventCategoryTaskBlock marks calendar events produced by the scheduler.
const EventCategoryTaskBlock = "task-block"

// CalendarEvent is a persisted calendar record.
type CalendarEvent struct {
	ID        string    `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Category  string    `json:"category" db:"category"`
	Start     time.Time `json:"start" db:"start_time"`
	End       time.Time `json:"end" db:"end_time"`
	Notes     *string   `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Overlaps reports whether the event intersects the half-open window [start, end).
func (e *CalendarEvent) Overlaps(start, end time.Time) bool {
	return e.Start.Before(end) && e.End.After(start)
}

// Habit is a recurring practice tracked by daily check-ins.
type Habit struct {
	ID        string      `json:"id" db:"id"`
	UserID    uuid.UUID   `json:"user_id" db:"user_id"`
	Name      string      `json:"name" db:"name"`
	Icon      *string     `json:"icon" db:"icon"`
	CheckIns  []time.Time `json:"check_ins"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// Streak returns the number of consecutive checked-in days ending today or
// yesterday. A habit not yet checked today keeps its streak alive until the
// following midnight.
func (h *Habit) Streak(now time.Time) int {
	days := make(map[string]bool, len(h.CheckIns))
	for _, c := range h.CheckIns {
		days[c.Format("2006-01-02")] = true
	}

	cursor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !days[cursor.Format("2006-01-02")] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for days[cursor.Format("2006-01-02")] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// JournalEntry is a dated free-form note, optionally transcribed from speech.
type JournalEntry struct {
	ID          string    `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Body        string    `json:"body" db:"body"`
	EntryDate   time.Time `json:"entry_date" db:"entry_date"`
	Transcribed bool      `json:"transcribed" db:"transcribed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ValidationError signals that a caller-supplied input was rejected before
// any write was attempted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// PartialFailureError reports that one or more persistence writes failed.
// Writes that already succeeded are not rolled back.
type PartialFailureError struct {
	SuccessCount int
	FailureCount int
	Errs         []error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%d of %d writes failed", e.FailureCount, e.SuccessCount+e.FailureCount)
}

func (e *PartialFailureError) Unwrap() []error {
	return e.Errs
}

// Utility methods
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting; higher sorts first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func (e Effort) IsValid() bool {
	switch e {
	case EffortSmall, EffortMedium, EffortLarge:
		return true
	default:
		return false
	}
}
