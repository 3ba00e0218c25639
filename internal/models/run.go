package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RunStatus represents valid run outcomes
type RunStatus string

// Run statuses
const (
	RunStatusPassed RunStatus = "passed"
	RunStatusFailed RunStatus = "failed"
)

// Domain errors
var (
	ErrMissingTargetURL = errors.New("run target URL cannot be empty")
	ErrMissingReport    = errors.New("run requires a validation report")
)

// ValidationRun is the persisted record of one evaluation of a target page
type ValidationRun struct {
	ID               string
	Reference        string
	TargetURL        string
	ExpectedCategory string
	Status           RunStatus
	ItemCount        int
	FailureCount     int
	Reasons          string
	CreatedAt        time.Time
}

// NewValidationRun builds a run record from an evaluation outcome
func NewValidationRun(targetURL string, rules ValidationRuleSet, report *ValidationReport) (*ValidationRun, error) {
	if targetURL == "" {
		return nil, ErrMissingTargetURL
	}
	if report == nil {
		return nil, ErrMissingReport
	}

	status := RunStatusFailed
	if report.OverallPass {
		status = RunStatusPassed
	}

	return &ValidationRun{
		ID:               uuid.New().String(),
		Reference:        fmt.Sprintf("RUN-%d", time.Now().UnixNano()),
		TargetURL:        targetURL,
		ExpectedCategory: rules.ExpectedCategory,
		Status:           status,
		ItemCount:        len(report.ItemResults),
		FailureCount:     report.FailureCount(),
		Reasons:          strings.Join(report.FailureReasons(), "\n"),
		CreatedAt:        time.Now(),
	}, nil
}

// Passed returns true if the recorded evaluation passed overall
func (r *ValidationRun) Passed() bool {
	return r.Status == RunStatusPassed
}
