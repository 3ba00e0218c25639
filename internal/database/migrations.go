package database

import (
	"fmt"
	"log"
)

// RunMigrations creates the necessary database tables
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}

	// Create runs table
	createRunsTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id UUID PRIMARY KEY,
		reference VARCHAR(255) UNIQUE NOT NULL,
		target_url TEXT NOT NULL,
		expected_category VARCHAR(255) NOT NULL,
		status VARCHAR(50) NOT NULL,
		item_count INTEGER NOT NULL,
		failure_count INTEGER NOT NULL,
		reasons TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_reference ON runs(reference);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	`

	_, err := DB.Exec(createRunsTable)
	if err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
