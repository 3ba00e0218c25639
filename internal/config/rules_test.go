package config

import (
	"errors"
	"testing"

	"github.com/storefrontqa/relatedcheck/internal/models"
)

// envMap returns a getenv func backed by a map, empty string for missing keys
func envMap(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadRuleConfig_Defaults(t *testing.T) {
	rules, err := LoadRuleConfig(envMap(nil))
	if err != nil {
		t.Fatalf("LoadRuleConfig() unexpected error = %v", err)
	}

	if rules.ExpectedCategory != "Wallet" {
		t.Errorf("Expected category Wallet, got %s", rules.ExpectedCategory)
	}
	if rules.BasePrice != 5000 {
		t.Errorf("Expected base price 5000, got %d", rules.BasePrice)
	}
	if rules.ToleranceFraction != 0.20 {
		t.Errorf("Expected tolerance 0.20, got %f", rules.ToleranceFraction)
	}
	if rules.MaxItems != 6 {
		t.Errorf("Expected max items 6, got %d", rules.MaxItems)
	}
	if !rules.RequireFieldsComplete {
		t.Error("Expected field completeness to be required by default")
	}
}

func TestLoadRuleConfig_Overrides(t *testing.T) {
	rules, err := LoadRuleConfig(envMap(map[string]string{
		"EXPECTED_CATEGORY":       "Belt",
		"BASE_PRICE_CENTS":        "2500",
		"TOLERANCE_FRACTION":      "0.10",
		"MAX_ITEMS":               "4",
		"REQUIRE_FIELDS_COMPLETE": "false",
	}))
	if err != nil {
		t.Fatalf("LoadRuleConfig() unexpected error = %v", err)
	}

	if rules.ExpectedCategory != "Belt" {
		t.Errorf("Expected category Belt, got %s", rules.ExpectedCategory)
	}
	if rules.BasePrice != 2500 {
		t.Errorf("Expected base price 2500, got %d", rules.BasePrice)
	}
	if rules.ToleranceFraction != 0.10 {
		t.Errorf("Expected tolerance 0.10, got %f", rules.ToleranceFraction)
	}
	if rules.MaxItems != 4 {
		t.Errorf("Expected max items 4, got %d", rules.MaxItems)
	}
	if rules.RequireFieldsComplete {
		t.Error("Expected field completeness to be disabled")
	}
}

func TestLoadRuleConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		configErr  bool
		parseError bool
	}{
		{
			name:       "non-numeric base price",
			env:        map[string]string{"BASE_PRICE_CENTS": "fifty"},
			parseError: true,
		},
		{
			name:       "non-numeric tolerance",
			env:        map[string]string{"TOLERANCE_FRACTION": "twenty percent"},
			parseError: true,
		},
		{
			name:      "tolerance outside the allowed interval",
			env:       map[string]string{"TOLERANCE_FRACTION": "1.5"},
			configErr: true,
		},
		{
			name:      "negative max items",
			env:       map[string]string{"MAX_ITEMS": "-1"},
			configErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRuleConfig(envMap(tt.env))
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}

			var configErr *models.ConfigurationError
			if tt.configErr && !errors.As(err, &configErr) {
				t.Errorf("Expected *models.ConfigurationError, got %v", err)
			}
			if tt.parseError && errors.As(err, &configErr) {
				t.Errorf("Expected a parse error, got configuration error %v", err)
			}
		})
	}
}

func TestLoadTargetConfig(t *testing.T) {
	t.Run("missing target URL", func(t *testing.T) {
		_, err := LoadTargetConfig(envMap(nil))
		if err == nil {
			t.Error("Expected an error when TARGET_URL is unset")
		}
	})

	t.Run("defaults with target URL set", func(t *testing.T) {
		config, err := LoadTargetConfig(envMap(map[string]string{
			"TARGET_URL": "https://shop.example.com/products/wallet-1",
		}))
		if err != nil {
			t.Fatalf("LoadTargetConfig() unexpected error = %v", err)
		}

		if config.SectionSelector != ".related-products" {
			t.Errorf("Expected default section selector, got %s", config.SectionSelector)
		}
		if !config.Headless {
			t.Error("Expected headless mode by default")
		}
		if config.TimeoutMs != 10000 {
			t.Errorf("Expected default timeout 10000, got %f", config.TimeoutMs)
		}
	})

	t.Run("selector and browser overrides", func(t *testing.T) {
		config, err := LoadTargetConfig(envMap(map[string]string{
			"TARGET_URL":               "https://shop.example.com/products/wallet-1",
			"RELATED_SECTION_SELECTOR": "#related",
			"PRODUCT_CARD_SELECTOR":    "li.card",
			"HEADLESS":                 "false",
			"NAVIGATION_TIMEOUT_MS":    "30000",
		}))
		if err != nil {
			t.Fatalf("LoadTargetConfig() unexpected error = %v", err)
		}

		if config.SectionSelector != "#related" {
			t.Errorf("Expected overridden section selector, got %s", config.SectionSelector)
		}
		if config.CardSelector != "li.card" {
			t.Errorf("Expected overridden card selector, got %s", config.CardSelector)
		}
		if config.Headless {
			t.Error("Expected headless mode to be disabled")
		}
		if config.TimeoutMs != 30000 {
			t.Errorf("Expected timeout 30000, got %f", config.TimeoutMs)
		}
	})

	t.Run("invalid headless flag", func(t *testing.T) {
		_, err := LoadTargetConfig(envMap(map[string]string{
			"TARGET_URL": "https://shop.example.com/products/wallet-1",
			"HEADLESS":   "maybe",
		}))
		if err == nil {
			t.Error("Expected an error for a non-boolean HEADLESS value")
		}
	})
}
