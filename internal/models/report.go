package models

import "fmt"

// ItemResult holds the outcome of evaluating one related-product card.
// Index refers to the card's position in the evaluated snapshot.
type ItemResult struct {
	Index      int
	CategoryOk bool
	PriceOk    bool
	FieldsOk   bool
	Reasons    []string
}

// Passed returns true if every sub-check on this item succeeded
func (r ItemResult) Passed() bool {
	return r.CategoryOk && r.PriceOk && r.FieldsOk
}

// SectionResult holds the section-level outcome of an evaluation
type SectionResult struct {
	ItemCount      int
	CountOk        bool
	EmptyHandledOk bool
	Reasons        []string
}

// ValidationReport is the full outcome of evaluating one snapshot against a
// rule set. ItemResults are in snapshot order, one entry per input item.
// Reports are created fresh per evaluation and owned by the caller.
type ValidationReport struct {
	OverallPass bool
	ItemResults []ItemResult
	Section     SectionResult
}

// FailureReasons flattens every failing check into one message per reason,
// prefixed with the item index for item-level failures. Empty when the
// report passed overall.
func (r *ValidationReport) FailureReasons() []string {
	var reasons []string
	for _, item := range r.ItemResults {
		for _, reason := range item.Reasons {
			reasons = append(reasons, fmt.Sprintf("item %d: %s", item.Index, reason))
		}
	}
	reasons = append(reasons, r.Section.Reasons...)
	return reasons
}

// FailureCount returns the number of items with at least one failing check
func (r *ValidationReport) FailureCount() int {
	count := 0
	for _, item := range r.ItemResults {
		if !item.Passed() {
			count++
		}
	}
	return count
}
