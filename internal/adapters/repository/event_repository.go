package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/ports"
)

// EventRepositoryImpl implements the EventRepository interface
type EventRepositoryImpl struct {
	db *sqlx.DB
}

// NewEventRepository creates a new calendar event repository
func NewEventRepository(db *sqlx.DB) ports.EventRepository {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *entities.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (id, user_id, title, category, start_time, end_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.UserID, event.Title, event.Category,
		event.Start, event.End, event.Notes,
	).Scan(&event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

func (r *EventRepositoryImpl) GetByID(ctx context.Context, userID uuid.UUID, id string) (*entities.CalendarEvent, error) {
	query := `
		SELECT id, user_id, title, category, start_time, end_time, notes, created_at, updated_at
		FROM calendar_events
		WHERE id = $1 AND user_id = $2`

	var event entities.CalendarEvent
	err := r.db.GetContext(ctx, &event, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}

	return &event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, event *entities.CalendarEvent) error {
	query := `
		UPDATE calendar_events
		SET title = $3, category = $4, start_time = $5, end_time = $6, notes = $7,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.UserID, event.Title, event.Category,
		event.Start, event.End, event.Notes,
	).Scan(&event.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return entities.ErrEventNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}

	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	query := `DELETE FROM calendar_events WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrEventNotFound
	}

	return nil
}

func (r *EventRepositoryImpl) ListForDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) ([]*entities.CalendarEvent, error) {
	// Half-open window: an event belongs to the day when it intersects
	// [dayStart, dayStart+24h).
	query := `
		SELECT id, user_id, title, category, start_time, end_time, notes, created_at, updated_at
		FROM calendar_events
		WHERE user_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time`

	var events []*entities.CalendarEvent
	err := r.db.SelectContext(ctx, &events, query, userID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("list events for day: %w", err)
	}

	return events, nil
}
