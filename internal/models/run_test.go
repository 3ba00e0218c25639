package models

import (
	"strings"
	"testing"
)

func TestNewValidationRun(t *testing.T) {
	rules := ValidationRuleSet{
		ExpectedCategory:  "Wallet",
		BasePrice:         5000,
		ToleranceFraction: 0.20,
		MaxItems:          6,
	}

	tests := []struct {
		name      string
		targetURL string
		report    *ValidationReport
		wantErr   error
	}{
		{
			name:      "valid passing run",
			targetURL: "https://shop.example.com/products/wallet-1",
			report: &ValidationReport{
				OverallPass: true,
				ItemResults: []ItemResult{
					{Index: 0, CategoryOk: true, PriceOk: true, FieldsOk: true},
				},
				Section: SectionResult{ItemCount: 1, CountOk: true, EmptyHandledOk: true},
			},
		},
		{
			name:      "empty target URL",
			targetURL: "",
			report:    &ValidationReport{OverallPass: true},
			wantErr:   ErrMissingTargetURL,
		},
		{
			name:      "missing report",
			targetURL: "https://shop.example.com/products/wallet-1",
			report:    nil,
			wantErr:   ErrMissingReport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, err := NewValidationRun(tt.targetURL, rules, tt.report)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("NewValidationRun() error = %v, wantErr %v", err, tt.wantErr)
				}
				if run != nil {
					t.Error("Expected run to be nil when error occurs")
				}
				return
			}

			if err != nil {
				t.Errorf("NewValidationRun() unexpected error = %v", err)
				return
			}

			if run.ID == "" {
				t.Error("Run ID should not be empty")
			}
			if !strings.HasPrefix(run.Reference, "RUN-") {
				t.Errorf("Expected reference with RUN- prefix, got %s", run.Reference)
			}
			if run.ExpectedCategory != "Wallet" {
				t.Errorf("Expected category Wallet, got %s", run.ExpectedCategory)
			}
			if run.CreatedAt.IsZero() {
				t.Error("CreatedAt should be set")
			}
		})
	}
}

func TestNewValidationRun_StatusMapping(t *testing.T) {
	rules := ValidationRuleSet{ExpectedCategory: "Wallet", BasePrice: 5000, ToleranceFraction: 0.20, MaxItems: 6}

	failingReport := &ValidationReport{
		OverallPass: false,
		ItemResults: []ItemResult{
			{Index: 0, CategoryOk: false, PriceOk: true, FieldsOk: true, Reasons: []string{"category mismatch: expected Wallet, got Belt"}},
			{Index: 1, CategoryOk: true, PriceOk: true, FieldsOk: true},
		},
		Section: SectionResult{ItemCount: 2, CountOk: true, EmptyHandledOk: true},
	}

	run, err := NewValidationRun("https://shop.example.com/products/wallet-1", rules, failingReport)
	if err != nil {
		t.Fatalf("NewValidationRun() unexpected error = %v", err)
	}

	if run.Status != RunStatusFailed {
		t.Errorf("Expected status %s, got %s", RunStatusFailed, run.Status)
	}
	if run.Passed() {
		t.Error("Expected failing run to not be passed")
	}
	if run.ItemCount != 2 {
		t.Errorf("Expected item count 2, got %d", run.ItemCount)
	}
	if run.FailureCount != 1 {
		t.Errorf("Expected failure count 1, got %d", run.FailureCount)
	}
	if !strings.Contains(run.Reasons, "category mismatch") {
		t.Errorf("Expected reasons to mention the category mismatch, got %q", run.Reasons)
	}

	passingReport := &ValidationReport{
		OverallPass: true,
		Section:     SectionResult{ItemCount: 0, CountOk: true, EmptyHandledOk: true},
	}

	run, err = NewValidationRun("https://shop.example.com/products/wallet-1", rules, passingReport)
	if err != nil {
		t.Fatalf("NewValidationRun() unexpected error = %v", err)
	}

	if run.Status != RunStatusPassed {
		t.Errorf("Expected status %s, got %s", RunStatusPassed, run.Status)
	}
	if !run.Passed() {
		t.Error("Expected passing run to be passed")
	}
	if run.Reasons != "" {
		t.Errorf("Expected empty reasons for a passing run, got %q", run.Reasons)
	}
}
