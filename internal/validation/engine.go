// Package validation implements the product validation engine: a pure,
// deterministic evaluation of a captured related-products snapshot against
// a configurable rule set. The engine performs no I/O and holds no state;
// concurrent evaluations on independent inputs need no coordination.
package validation

import (
	"fmt"
	"strings"

	"github.com/storefrontqa/relatedcheck/internal/models"
)

// Evaluate checks every item in the snapshot against the rule set and
// returns a full report. Evaluation never short-circuits: a failing item
// does not stop later items from being checked, so a single report surfaces
// every failing sub-check at once.
//
// noResultsIndicatorPresent tells the engine whether the page showed an
// explicit "no results" message for the section; an empty snapshot is only
// acceptable when it did.
//
// An invalid rule set returns a *models.ConfigurationError before any item
// is evaluated. A well-formed evaluation never returns an error: a failing
// snapshot is a normal report with OverallPass set to false.
func Evaluate(snapshot models.ListingSnapshot, rules models.ValidationRuleSet, noResultsIndicatorPresent bool) (*models.ValidationReport, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	low, high := rules.PriceBounds()

	itemResults := make([]models.ItemResult, 0, len(snapshot))
	itemsPass := true
	for i, item := range snapshot {
		result := evaluateItem(i, item, rules, low, high)
		if !result.Passed() {
			itemsPass = false
		}
		itemResults = append(itemResults, result)
	}

	section := evaluateSection(len(snapshot), rules, noResultsIndicatorPresent)

	return &models.ValidationReport{
		OverallPass: itemsPass && section.CountOk && section.EmptyHandledOk,
		ItemResults: itemResults,
		Section:     section,
	}, nil
}

// evaluateItem runs the category, price and field checks for one card
func evaluateItem(index int, item models.ProductItem, rules models.ValidationRuleSet, low, high int64) models.ItemResult {
	result := models.ItemResult{
		Index:      index,
		CategoryOk: true,
		PriceOk:    true,
		FieldsOk:   true,
	}

	// Extracted text can carry rendering whitespace; trimming before
	// comparison is the evaluator's responsibility, not the driver's.
	category := strings.TrimSpace(item.Category)
	if category != rules.ExpectedCategory {
		result.CategoryOk = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("category mismatch: expected %s, got %s", rules.ExpectedCategory, category))
	}

	// Bounds are inclusive on both ends
	if item.Price < low || item.Price > high {
		result.PriceOk = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("price %s outside allowed range [%s, %s]",
				models.FormatPrice(item.Price), models.FormatPrice(low), models.FormatPrice(high)))
	}

	if rules.RequireFieldsComplete {
		if !item.HasImage {
			result.FieldsOk = false
			result.Reasons = append(result.Reasons, "product image not displayed")
		}
		if !item.HasVisibleTitle {
			result.FieldsOk = false
			result.Reasons = append(result.Reasons, "product title not displayed")
		}
		if !item.HasVisiblePrice {
			result.FieldsOk = false
			result.Reasons = append(result.Reasons, "product price not displayed")
		}
	}

	return result
}

// evaluateSection runs the item-count and empty-section checks
func evaluateSection(count int, rules models.ValidationRuleSet, noResultsIndicatorPresent bool) models.SectionResult {
	section := models.SectionResult{
		ItemCount:      count,
		CountOk:        count <= rules.MaxItems,
		EmptyHandledOk: count > 0 || noResultsIndicatorPresent,
	}

	if !section.CountOk {
		section.Reasons = append(section.Reasons,
			fmt.Sprintf("section shows %d items, at most %d allowed", count, rules.MaxItems))
	}
	if !section.EmptyHandledOk {
		section.Reasons = append(section.Reasons, `section is empty and no "no results" message is displayed`)
	}

	return section
}
