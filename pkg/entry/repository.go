package entry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	StoreEntry(ctx context.Context, date string, hours float64) error
	DeleteEntry(ctx context.Context, date string) error
	GetAllEntries(ctx context.Context) (map[string]float64, error)
	StoreNote(ctx context.Context, date string, content string) error
	DeleteNote(ctx context.Context, date string) error
	// GetNote returns the note for a day, or "" when none is stored.
	GetNote(ctx context.Context, date string) (string, error)
	GetAllNotes(ctx context.Context) (map[string]string, error)
	// ReplaceAll atomically replaces all entries and notes with the given maps.
	ReplaceAll(ctx context.Context, entries map[string]float64, notes map[string]string) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreEntry(ctx context.Context, date string, hours float64) error {
	query := `INSERT INTO work_entry (date, hours) VALUES (?, ?)
				ON CONFLICT(date) DO UPDATE SET hours = excluded.hours`
	if _, err := r.db.ExecContext(ctx, query, date, hours); err != nil {
		return fmt.Errorf("failed to store work entry: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) DeleteEntry(ctx context.Context, date string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM work_entry WHERE date = ?", date); err != nil {
		return fmt.Errorf("failed to delete work entry: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) GetAllEntries(ctx context.Context) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT date, hours FROM work_entry")
	if err != nil {
		return nil, fmt.Errorf("failed to read work entries: %w", err)
	}
	defer rows.Close()

	entries := map[string]float64{}
	for rows.Next() {
		var date string
		var hours float64
		if err := rows.Scan(&date, &hours); err != nil {
			return nil, fmt.Errorf("failed to scan work entry: %w", err)
		}
		entries[date] = hours
	}
	return entries, rows.Err()
}

func (r *RepositoryImpl) StoreNote(ctx context.Context, date string, content string) error {
	query := `INSERT INTO day_note (date, content) VALUES (?, ?)
				ON CONFLICT(date) DO UPDATE SET content = excluded.content`
	if _, err := r.db.ExecContext(ctx, query, date, content); err != nil {
		return fmt.Errorf("failed to store note: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) DeleteNote(ctx context.Context, date string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM day_note WHERE date = ?", date); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) GetNote(ctx context.Context, date string) (string, error) {
	var content string
	err := r.db.QueryRowContext(ctx, "SELECT content FROM day_note WHERE date = ?", date).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read note: %w", err)
	}
	return content, nil
}

func (r *RepositoryImpl) GetAllNotes(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT date, content FROM day_note")
	if err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}
	defer rows.Close()

	notes := map[string]string{}
	for rows.Next() {
		var date, content string
		if err := rows.Scan(&date, &content); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes[date] = content
	}
	return notes, rows.Err()
}

func (r *RepositoryImpl) ReplaceAll(ctx context.Context, entries map[string]float64, notes map[string]string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// The Rollback will be a no-op if the transaction was already committed
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Errorf("rollback error: %v", rbErr)
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM work_entry"); err != nil {
		return fmt.Errorf("failed to clear work entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM day_note"); err != nil {
		return fmt.Errorf("failed to clear notes: %w", err)
	}
	for date, hours := range entries {
		if _, err := tx.ExecContext(ctx, "INSERT INTO work_entry (date, hours) VALUES (?, ?)", date, hours); err != nil {
			return fmt.Errorf("failed to insert work entry %s: %w", date, err)
		}
	}
	for date, content := range notes {
		if _, err := tx.ExecContext(ctx, "INSERT INTO day_note (date, content) VALUES (?, ?)", date, content); err != nil {
			return fmt.Errorf("failed to insert note %s: %w", date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
