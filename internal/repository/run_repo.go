package repository

import (
	"database/sql"
	"fmt"

	"github.com/storefrontqa/relatedcheck/internal/database"
	"github.com/storefrontqa/relatedcheck/internal/models"
)

// RunRepository handles database operations for validation runs
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository() *RunRepository {
	return &RunRepository{
		db: database.DB,
	}
}

// NewRunRepositoryWithDB creates a new run repository with a specific database connection
func NewRunRepositoryWithDB(db *sql.DB) *RunRepository {
	return &RunRepository{
		db: db,
	}
}

// CreateRun persists a new validation run
func (r *RunRepository) CreateRun(run *models.ValidationRun) error {
	query := `
		INSERT INTO runs (id, reference, target_url, expected_category, status, item_count, failure_count, reasons, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(query,
		run.ID,
		run.Reference,
		run.TargetURL,
		run.ExpectedCategory,
		run.Status,
		run.ItemCount,
		run.FailureCount,
		run.Reasons,
		run.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// GetRunByReference retrieves a validation run by its reference
func (r *RunRepository) GetRunByReference(reference string) (*models.ValidationRun, error) {
	query := `
		SELECT id, reference, target_url, expected_category, status, item_count, failure_count, reasons, created_at
		FROM runs
		WHERE reference = $1
	`

	run := &models.ValidationRun{}
	err := r.db.QueryRow(query, reference).Scan(
		&run.ID,
		&run.Reference,
		&run.TargetURL,
		&run.ExpectedCategory,
		&run.Status,
		&run.ItemCount,
		&run.FailureCount,
		&run.Reasons,
		&run.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// ListRuns retrieves the most recent validation runs, newest first
func (r *RunRepository) ListRuns(limit int) ([]*models.ValidationRun, error) {
	query := `
		SELECT id, reference, target_url, expected_category, status, item_count, failure_count, reasons, created_at
		FROM runs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ValidationRun
	for rows.Next() {
		run := &models.ValidationRun{}
		if err := rows.Scan(
			&run.ID,
			&run.Reference,
			&run.TargetURL,
			&run.ExpectedCategory,
			&run.Status,
			&run.ItemCount,
			&run.FailureCount,
			&run.Reasons,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}

	return runs, nil
}
