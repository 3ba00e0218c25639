package config

import (
	"fmt"
	"strconv"

	"github.com/storefrontqa/relatedcheck/internal/models"
)

// Default business rules for the related-products section
const (
	defaultExpectedCategory  = "Wallet"
	defaultBasePriceCents    = 5000 // $50.00
	defaultToleranceFraction = 0.20
	defaultMaxItems          = 6
)

// LoadRuleConfig loads the validation rule set from environment variables,
// falling back to the defaults above. The loaded rule set is validated
// before it is returned.
func LoadRuleConfig(getenv func(string) string) (models.ValidationRuleSet, error) {
	rules := models.ValidationRuleSet{
		ExpectedCategory:      defaultExpectedCategory,
		BasePrice:             defaultBasePriceCents,
		ToleranceFraction:     defaultToleranceFraction,
		MaxItems:              defaultMaxItems,
		RequireFieldsComplete: true,
	}

	if v := getenv("EXPECTED_CATEGORY"); v != "" {
		rules.ExpectedCategory = v
	}
	if v := getenv("BASE_PRICE_CENTS"); v != "" {
		cents, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return rules, fmt.Errorf("BASE_PRICE_CENTS must be an integer: %w", err)
		}
		rules.BasePrice = cents
	}
	if v := getenv("TOLERANCE_FRACTION"); v != "" {
		fraction, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return rules, fmt.Errorf("TOLERANCE_FRACTION must be a number: %w", err)
		}
		rules.ToleranceFraction = fraction
	}
	if v := getenv("MAX_ITEMS"); v != "" {
		maxItems, err := strconv.Atoi(v)
		if err != nil {
			return rules, fmt.Errorf("MAX_ITEMS must be an integer: %w", err)
		}
		rules.MaxItems = maxItems
	}
	if v := getenv("REQUIRE_FIELDS_COMPLETE"); v != "" {
		required, err := strconv.ParseBool(v)
		if err != nil {
			return rules, fmt.Errorf("REQUIRE_FIELDS_COMPLETE must be a boolean: %w", err)
		}
		rules.RequireFieldsComplete = required
	}

	if err := rules.Validate(); err != nil {
		return rules, err
	}

	return rules, nil
}
