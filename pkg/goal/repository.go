package goal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	StoreMonthly(ctx context.Context, month string, goal Goal) error
	// GetMonthly returns the zero Goal when no record exists for the month.
	GetMonthly(ctx context.Context, month string) (Goal, error)
	GetAllMonthly(ctx context.Context) (map[string]Goal, error)
	StoreYearly(ctx context.Context, goal Goal) error
	GetYearly(ctx context.Context) (Goal, error)
	// ReplaceAll swaps every goal record at once. Used by backup import.
	ReplaceAll(ctx context.Context, monthly map[string]Goal, yearly Goal) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreMonthly(ctx context.Context, month string, goal Goal) error {
	query := `INSERT INTO monthly_goal (month, target_hours, target_earnings) VALUES (?, ?, ?)
				ON CONFLICT(month) DO UPDATE SET target_hours = excluded.target_hours, target_earnings = excluded.target_earnings`
	if _, err := r.db.ExecContext(ctx, query, month, goal.TargetHours, goal.TargetEarnings); err != nil {
		return fmt.Errorf("failed to store monthly goal: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) GetMonthly(ctx context.Context, month string) (Goal, error) {
	var goal Goal
	err := r.db.QueryRowContext(ctx,
		"SELECT target_hours, target_earnings FROM monthly_goal WHERE month = ?", month).
		Scan(&goal.TargetHours, &goal.TargetEarnings)
	if errors.Is(err, sql.ErrNoRows) {
		return Goal{}, nil
	}
	if err != nil {
		return Goal{}, fmt.Errorf("failed to read monthly goal: %w", err)
	}
	return goal, nil
}

func (r *RepositoryImpl) GetAllMonthly(ctx context.Context) (map[string]Goal, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT month, target_hours, target_earnings FROM monthly_goal")
	if err != nil {
		return nil, fmt.Errorf("failed to read monthly goals: %w", err)
	}
	defer rows.Close()

	goals := map[string]Goal{}
	for rows.Next() {
		var month string
		var goal Goal
		if err := rows.Scan(&month, &goal.TargetHours, &goal.TargetEarnings); err != nil {
			return nil, fmt.Errorf("failed to scan monthly goal: %w", err)
		}
		goals[month] = goal
	}
	return goals, rows.Err()
}

func (r *RepositoryImpl) StoreYearly(ctx context.Context, goal Goal) error {
	query := `INSERT INTO yearly_goal (id, target_hours, target_earnings) VALUES (1, ?, ?)
				ON CONFLICT(id) DO UPDATE SET target_hours = excluded.target_hours, target_earnings = excluded.target_earnings`
	if _, err := r.db.ExecContext(ctx, query, goal.TargetHours, goal.TargetEarnings); err != nil {
		return fmt.Errorf("failed to store yearly goal: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) GetYearly(ctx context.Context) (Goal, error) {
	var goal Goal
	err := r.db.QueryRowContext(ctx,
		"SELECT target_hours, target_earnings FROM yearly_goal WHERE id = 1").
		Scan(&goal.TargetHours, &goal.TargetEarnings)
	if errors.Is(err, sql.ErrNoRows) {
		return Goal{}, nil
	}
	if err != nil {
		return Goal{}, fmt.Errorf("failed to read yearly goal: %w", err)
	}
	return goal, nil
}

func (r *RepositoryImpl) ReplaceAll(ctx context.Context, monthly map[string]Goal, yearly Goal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Errorf("rollback error: %v", rbErr)
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM monthly_goal"); err != nil {
		return fmt.Errorf("failed to clear monthly goals: %w", err)
	}
	for month, goal := range monthly {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO monthly_goal (month, target_hours, target_earnings) VALUES (?, ?, ?)",
			month, goal.TargetHours, goal.TargetEarnings); err != nil {
			return fmt.Errorf("failed to insert monthly goal %s: %w", month, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO yearly_goal (id, target_hours, target_earnings) VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET target_hours = excluded.target_hours, target_earnings = excluded.target_earnings`,
		yearly.TargetHours, yearly.TargetEarnings); err != nil {
		return fmt.Errorf("failed to store yearly goal: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
