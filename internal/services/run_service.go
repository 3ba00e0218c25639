package services

import (
	"fmt"

	"github.com/storefrontqa/relatedcheck/internal/models"
)

// defaultListLimit caps how many runs a list call returns when the caller
// does not ask for a specific amount
const defaultListLimit = 20

// RunRepository defines the interface for run persistence
type RunRepository interface {
	CreateRun(run *models.ValidationRun) error
	GetRunByReference(reference string) (*models.ValidationRun, error)
	ListRuns(limit int) ([]*models.ValidationRun, error)
}

// RunService records evaluation outcomes and reads them back
type RunService interface {
	RecordRun(targetURL string, rules models.ValidationRuleSet, report *models.ValidationReport) (*models.ValidationRun, error)
	GetRunByReference(reference string) (*models.ValidationRun, error)
	ListRuns(limit int) ([]*models.ValidationRun, error)
}

// RunServiceImpl implements RunService
type RunServiceImpl struct {
	runRepo RunRepository
}

// NewRunService creates a new run service
func NewRunService(runRepo RunRepository) RunService {
	return &RunServiceImpl{
		runRepo: runRepo,
	}
}

// RecordRun builds a run record from an evaluation outcome and persists it
func (s *RunServiceImpl) RecordRun(targetURL string, rules models.ValidationRuleSet, report *models.ValidationReport) (*models.ValidationRun, error) {
	// Build run using domain factory method
	run, err := models.NewValidationRun(targetURL, rules, report)
	if err != nil {
		return nil, fmt.Errorf("invalid run: %w", err)
	}

	// Persist to database
	if err := s.runRepo.CreateRun(run); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	return run, nil
}

// GetRunByReference retrieves a run by its reference
func (s *RunServiceImpl) GetRunByReference(reference string) (*models.ValidationRun, error) {
	run, err := s.runRepo.GetRunByReference(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns retrieves the most recent runs, newest first
func (s *RunServiceImpl) ListRuns(limit int) ([]*models.ValidationRun, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	runs, err := s.runRepo.ListRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
