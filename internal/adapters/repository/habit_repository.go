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

// HabitRepositoryImpl implements the HabitRepository interface
type HabitRepositoryImpl struct {
	db *sqlx.DB
}

// NewHabitRepository creates a new habit repository
func NewHabitRepository(db *sqlx.DB) ports.HabitRepository {
	return &HabitRepositoryImpl{db: db}
}

func (r *HabitRepositoryImpl) Create(ctx context.Context, habit *entities.Habit) error {
	query := `
		INSERT INTO habits (id, user_id, name, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	if habit.ID == "" {
		habit.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, query,
		habit.ID, habit.UserID, habit.Name, habit.Icon,
	).Scan(&habit.CreatedAt, &habit.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create habit: %w", err)
	}

	return nil
}

func (r *HabitRepositoryImpl) GetByID(ctx context.Context, userID uuid.UUID, id string) (*entities.Habit, error) {
	query := `
		SELECT id, user_id, name, icon, created_at, updated_at
		FROM habits
		WHERE id = $1 AND user_id = $2`

	var habit entities.Habit
	err := r.db.GetContext(ctx, &habit, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrHabitNotFound
		}
		return nil, fmt.Errorf("get habit by id: %w", err)
	}

	return &habit, nil
}

func (r *HabitRepositoryImpl) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	query := `DELETE FROM habits WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrHabitNotFound
	}

	return nil
}

func (r *HabitRepositoryImpl) List(ctx context.Context, userID uuid.UUID) ([]*entities.Habit, error) {
	query := `
		SELECT id, user_id, name, icon, created_at, updated_at
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at`

	var habits []*entities.Habit
	err := r.db.SelectContext(ctx, &habits, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	return habits, nil
}

func (r *HabitRepositoryImpl) AddCheckIn(ctx context.Context, habitID string, day time.Time) error {
	// One check-in per habit per day; repeats are no-ops.
	query := `
		INSERT INTO habit_check_ins (habit_id, check_in_date)
		VALUES ($1, $2)
		ON CONFLICT (habit_id, check_in_date) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, habitID, day)
	if err != nil {
		return fmt.Errorf("add habit check-in: %w", err)
	}

	return nil
}

func (r *HabitRepositoryImpl) ListCheckIns(ctx context.Context, habitID string) ([]time.Time, error) {
	query := `
		SELECT check_in_date
		FROM habit_check_ins
		WHERE habit_id = $1
		ORDER BY check_in_date DESC`

	var checkIns []time.Time
	err := r.db.SelectContext(ctx, &checkIns, query, habitID)
	if err != nil {
		return nil, fmt.Errorf("list habit check-ins: %w", err)
	}

	return checkIns, nil
}
