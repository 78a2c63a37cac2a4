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

// JournalRepositoryImpl implements the JournalRepository interface
type JournalRepositoryImpl struct {
	db *sqlx.DB
}

// NewJournalRepository creates a new journal entry repository
func NewJournalRepository(db *sqlx.DB) ports.JournalRepository {
	return &JournalRepositoryImpl{db: db}
}

func (r *JournalRepositoryImpl) Create(ctx context.Context, entry *entities.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (id, user_id, title, body, entry_date, transcribed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.Title, entry.Body, entry.EntryDate, entry.Transcribed,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create journal entry: %w", err)
	}

	return nil
}

func (r *JournalRepositoryImpl) GetByID(ctx context.Context, userID uuid.UUID, id string) (*entities.JournalEntry, error) {
	query := `
		SELECT id, user_id, title, body, entry_date, transcribed, created_at, updated_at
		FROM journal_entries
		WHERE id = $1 AND user_id = $2`

	var entry entities.JournalEntry
	err := r.db.GetContext(ctx, &entry, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entities.ErrEntryNotFound
		}
		return nil, fmt.Errorf("get journal entry by id: %w", err)
	}

	return &entry, nil
}

func (r *JournalRepositoryImpl) Update(ctx context.Context, entry *entities.JournalEntry) error {
	query := `
		UPDATE journal_entries
		SET title = $3, body = $4, entry_date = $5, transcribed = $6,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.Title, entry.Body, entry.EntryDate, entry.Transcribed,
	).Scan(&entry.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return entities.ErrEntryNotFound
		}
		return fmt.Errorf("update journal entry: %w", err)
	}

	return nil
}

func (r *JournalRepositoryImpl) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	query := `DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return entities.ErrEntryNotFound
	}

	return nil
}

func (r *JournalRepositoryImpl) List(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entities.JournalEntry, error) {
	query := `
		SELECT id, user_id, title, body, entry_date, transcribed, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1 AND entry_date >= $2 AND entry_date < $3
		ORDER BY entry_date DESC`

	var entries []*entities.JournalEntry
	err := r.db.SelectContext(ctx, &entries, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}

	return entries, nil
}
