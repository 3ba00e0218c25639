//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/storefrontqa/relatedcheck/internal/models"
	"github.com/storefrontqa/relatedcheck/internal/repository/testutil"
)

// testRun builds a persisted-shape run with the given reference and status
func testRun(reference string, status models.RunStatus) *models.ValidationRun {
	return &models.ValidationRun{
		ID:               uuid.New().String(),
		Reference:        reference,
		TargetURL:        "https://shop.example.com/products/wallet-1",
		ExpectedCategory: "Wallet",
		Status:           status,
		ItemCount:        4,
		FailureCount:     0,
		CreatedAt:        time.Now(),
	}
}

func TestRunRepository_CreateRun_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepositoryWithDB(testDB.DB)

	tests := []struct {
		name    string
		run     *models.ValidationRun
		wantErr bool
	}{
		{
			name: "create passing run",
			run:  testRun("RUN-TEST-001", models.RunStatusPassed),
		},
		{
			name: "create failing run with reasons",
			run: &models.ValidationRun{
				ID:               uuid.New().String(),
				Reference:        "RUN-TEST-002",
				TargetURL:        "https://shop.example.com/products/wallet-1",
				ExpectedCategory: "Wallet",
				Status:           models.RunStatusFailed,
				ItemCount:        3,
				FailureCount:     1,
				Reasons:          "item 2: category mismatch: expected Wallet, got Belt",
				CreatedAt:        time.Now(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.CreateRun(tt.run)

			if (err != nil) != tt.wantErr {
				t.Errorf("CreateRun() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				return
			}

			stored, err := repo.GetRunByReference(tt.run.Reference)
			if err != nil {
				t.Fatalf("GetRunByReference() error = %v", err)
			}
			if stored.ID != tt.run.ID {
				t.Errorf("Expected ID %s, got %s", tt.run.ID, stored.ID)
			}
			if stored.Status != tt.run.Status {
				t.Errorf("Expected status %s, got %s", tt.run.Status, stored.Status)
			}
			if stored.Reasons != tt.run.Reasons {
				t.Errorf("Expected reasons %q, got %q", tt.run.Reasons, stored.Reasons)
			}
		})
	}
}

func TestRunRepository_CreateRun_DuplicateReference_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepositoryWithDB(testDB.DB)

	if err := repo.CreateRun(testRun("RUN-TEST-DUP", models.RunStatusPassed)); err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}

	if err := repo.CreateRun(testRun("RUN-TEST-DUP", models.RunStatusFailed)); err == nil {
		t.Error("Expected an error for a duplicate reference, got nil")
	}
}

func TestRunRepository_GetRunByReference_NotFound_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepositoryWithDB(testDB.DB)

	run, err := repo.GetRunByReference("RUN-DOES-NOT-EXIST")
	if err == nil {
		t.Error("Expected an error for a missing run, got nil")
	}
	if run != nil {
		t.Error("Expected nil run for a missing reference")
	}
}

func TestRunRepository_ListRuns_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepositoryWithDB(testDB.DB)

	// Insert runs with increasing timestamps so ordering is deterministic
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		run := testRun(uuid.New().String(), models.RunStatusPassed)
		run.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.CreateRun(run); err != nil {
			t.Fatalf("CreateRun() error = %v", err)
		}
	}

	runs, err := repo.ListRuns(3)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first
	for i := 1; i < len(runs); i++ {
		if runs[i].CreatedAt.After(runs[i-1].CreatedAt) {
			t.Errorf("Runs not ordered newest first at position %d", i)
		}
	}
}
