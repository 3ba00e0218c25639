package config

import (
	"fmt"
	"strconv"
)

// TargetConfig holds everything the page driver needs to locate the
// related-products section on the target store. Selectors have defaults
// matching the store under test and can be overridden per environment.
type TargetConfig struct {
	ProductURL        string
	SectionSelector   string
	CardSelector      string // relative to the section
	TitleSelector     string // relative to a card
	CategorySelector  string
	PriceSelector     string
	ImageSelector     string
	AddToCartSelector string
	WatchlistSelector string
	NoResultsSelector string
	Headless          bool
	TimeoutMs         float64
}

// LoadTargetConfig loads target-site configuration from environment
// variables. TARGET_URL is required; everything else has a default.
func LoadTargetConfig(getenv func(string) string) (TargetConfig, error) {
	config := TargetConfig{
		ProductURL:        getenv("TARGET_URL"),
		SectionSelector:   ".related-products",
		CardSelector:      ".product-card",
		TitleSelector:     ".product-title",
		CategorySelector:  ".product-category",
		PriceSelector:     ".product-price",
		ImageSelector:     "img",
		AddToCartSelector: "button.add-to-cart",
		WatchlistSelector: "button.add-to-watchlist",
		NoResultsSelector: ".no-related-products",
		Headless:          true,
		TimeoutMs:         10000,
	}

	if config.ProductURL == "" {
		return config, fmt.Errorf("TARGET_URL is required")
	}

	if v := getenv("RELATED_SECTION_SELECTOR"); v != "" {
		config.SectionSelector = v
	}
	if v := getenv("PRODUCT_CARD_SELECTOR"); v != "" {
		config.CardSelector = v
	}
	if v := getenv("PRODUCT_TITLE_SELECTOR"); v != "" {
		config.TitleSelector = v
	}
	if v := getenv("PRODUCT_CATEGORY_SELECTOR"); v != "" {
		config.CategorySelector = v
	}
	if v := getenv("PRODUCT_PRICE_SELECTOR"); v != "" {
		config.PriceSelector = v
	}
	if v := getenv("PRODUCT_IMAGE_SELECTOR"); v != "" {
		config.ImageSelector = v
	}
	if v := getenv("ADD_TO_CART_SELECTOR"); v != "" {
		config.AddToCartSelector = v
	}
	if v := getenv("ADD_TO_WATCHLIST_SELECTOR"); v != "" {
		config.WatchlistSelector = v
	}
	if v := getenv("NO_RESULTS_SELECTOR"); v != "" {
		config.NoResultsSelector = v
	}
	if v := getenv("HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return config, fmt.Errorf("HEADLESS must be a boolean: %w", err)
		}
		config.Headless = headless
	}
	if v := getenv("NAVIGATION_TIMEOUT_MS"); v != "" {
		timeout, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return config, fmt.Errorf("NAVIGATION_TIMEOUT_MS must be a number: %w", err)
		}
		config.TimeoutMs = timeout
	}

	return config, nil
}
