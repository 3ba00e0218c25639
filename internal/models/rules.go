package models

import (
	"fmt"
	"math"
)

// ConfigurationError reports an invalid ValidationRuleSet. It is raised
// before any item is evaluated and is distinct from a validation failure,
// which is a normal report with OverallPass set to false.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid rule set: %s %s", e.Field, e.Reason)
}

// ValidationRuleSet holds the business constraints a listing snapshot is
// checked against. Supplied once per evaluation and never modified.
type ValidationRuleSet struct {
	ExpectedCategory      string
	BasePrice             int64   // minor units (cents)
	ToleranceFraction     float64 // allowed relative price deviation, in (0, 1]
	MaxItems              int
	RequireFieldsComplete bool
}

// Validate checks the rule set shape and returns a *ConfigurationError for
// a non-positive base price, a tolerance outside (0, 1], or a negative
// maximum item count.
func (r ValidationRuleSet) Validate() error {
	if r.BasePrice <= 0 {
		return &ConfigurationError{Field: "basePrice", Reason: "must be positive"}
	}
	if r.ToleranceFraction <= 0 || r.ToleranceFraction > 1 {
		return &ConfigurationError{Field: "toleranceFraction", Reason: "must be in (0, 1]"}
	}
	if r.MaxItems < 0 {
		return &ConfigurationError{Field: "maxItems", Reason: "must not be negative"}
	}
	return nil
}

// PriceBounds returns the inclusive [low, high] price band in minor units,
// computed as BasePrice*(1±ToleranceFraction) rounded to the nearest cent.
func (r ValidationRuleSet) PriceBounds() (low, high int64) {
	base := float64(r.BasePrice)
	low = int64(math.Round(base * (1 - r.ToleranceFraction)))
	high = int64(math.Round(base * (1 + r.ToleranceFraction)))
	return low, high
}
