// Package driver captures related-product listings from a live product
// page. It is the only place that touches the browser or parses on-page
// text; the validation engine consumes the structured snapshot it produces.
package driver

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/storefrontqa/relatedcheck/internal/config"
	"github.com/storefrontqa/relatedcheck/internal/models"
)

// PageDriver extracts a typed ListingSnapshot from the rendered
// related-products section of a product page
type PageDriver struct {
	page playwright.Page
	cfg  config.TargetConfig
}

// NewPageDriver creates a driver bound to an open page
func NewPageDriver(page playwright.Page, cfg config.TargetConfig) *PageDriver {
	return &PageDriver{
		page: page,
		cfg:  cfg,
	}
}

// OpenProduct navigates to the configured product page and waits for the
// related-products section to attach
func (d *PageDriver) OpenProduct() error {
	if _, err := d.page.Goto(d.cfg.ProductURL, playwright.PageGotoOptions{
		Timeout: playwright.Float(d.cfg.TimeoutMs),
	}); err != nil {
		return fmt.Errorf("failed to open product page %s: %w", d.cfg.ProductURL, err)
	}

	section := d.page.Locator(d.cfg.SectionSelector)
	if err := section.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(d.cfg.TimeoutMs),
	}); err != nil {
		return fmt.Errorf("related products section %q did not appear: %w", d.cfg.SectionSelector, err)
	}

	return nil
}

// CaptureRelatedProducts extracts one ProductItem per displayed card, in
// rendering order, plus whether the page shows an explicit "no results"
// message for the section
func (d *PageDriver) CaptureRelatedProducts() (models.ListingSnapshot, bool, error) {
	section := d.page.Locator(d.cfg.SectionSelector)

	cards := section.Locator(d.cfg.CardSelector)
	count, err := cards.Count()
	if err != nil {
		return nil, false, fmt.Errorf("failed to count product cards: %w", err)
	}

	snapshot := make(models.ListingSnapshot, 0, count)
	for i := 0; i < count; i++ {
		item, err := d.extractCard(cards.Nth(i))
		if err != nil {
			return nil, false, fmt.Errorf("failed to extract card %d: %w", i, err)
		}
		snapshot = append(snapshot, item)
	}

	noResults, err := d.page.Locator(d.cfg.NoResultsSelector).IsVisible()
	if err != nil {
		return nil, false, fmt.Errorf("failed to check for no-results message: %w", err)
	}

	return snapshot, noResults, nil
}

// SectionVisible reports whether the related-products section is rendered
// and visible on the page
func (d *PageDriver) SectionVisible() (bool, error) {
	visible, err := d.page.Locator(d.cfg.SectionSelector).IsVisible()
	if err != nil {
		return false, fmt.Errorf("failed to check section visibility: %w", err)
	}
	return visible, nil
}

// Card returns the locator for the card at the given index, for tests that
// interact with a card beyond capturing it
func (d *PageDriver) Card(index int) playwright.Locator {
	return d.page.Locator(d.cfg.SectionSelector).Locator(d.cfg.CardSelector).Nth(index)
}

// AddToCartButton returns the add-to-cart control inside a card locator
func (d *PageDriver) AddToCartButton(card playwright.Locator) playwright.Locator {
	return card.Locator(d.cfg.AddToCartSelector)
}

// WatchlistButton returns the add-to-watchlist control inside a card locator
func (d *PageDriver) WatchlistButton(card playwright.Locator) playwright.Locator {
	return card.Locator(d.cfg.WatchlistSelector)
}

// extractCard reads one card's text and visibility flags
func (d *PageDriver) extractCard(card playwright.Locator) (models.ProductItem, error) {
	var item models.ProductItem

	title, err := textIfPresent(card.Locator(d.cfg.TitleSelector))
	if err != nil {
		return item, fmt.Errorf("failed to read title: %w", err)
	}
	item.Title = title

	category, err := textIfPresent(card.Locator(d.cfg.CategorySelector))
	if err != nil {
		return item, fmt.Errorf("failed to read category: %w", err)
	}
	item.Category = category

	titleVisible, err := card.Locator(d.cfg.TitleSelector).IsVisible()
	if err != nil {
		return item, fmt.Errorf("failed to check title visibility: %w", err)
	}
	item.HasVisibleTitle = titleVisible && strings.TrimSpace(title) != ""

	imageVisible, err := card.Locator(d.cfg.ImageSelector).First().IsVisible()
	if err != nil {
		return item, fmt.Errorf("failed to check image visibility: %w", err)
	}
	item.HasImage = imageVisible

	priceLocator := card.Locator(d.cfg.PriceSelector)
	priceVisible, err := priceLocator.IsVisible()
	if err != nil {
		return item, fmt.Errorf("failed to check price visibility: %w", err)
	}
	item.HasVisiblePrice = priceVisible
	if priceVisible {
		text, err := priceLocator.TextContent()
		if err != nil {
			return item, fmt.Errorf("failed to read price text: %w", err)
		}
		price, err := ParsePrice(text)
		if err != nil {
			return item, fmt.Errorf("card price: %w", err)
		}
		item.Price = price
	}

	if visible, err := d.AddToCartButton(card).IsVisible(); err == nil && visible {
		item.Actions = append(item.Actions, models.ActionAddToCart)
	}
	if visible, err := d.WatchlistButton(card).IsVisible(); err == nil && visible {
		item.Actions = append(item.Actions, models.ActionAddToWatchlist)
	}

	return item, nil
}

// textIfPresent returns the element's text content, or empty when the
// locator matches nothing
func textIfPresent(locator playwright.Locator) (string, error) {
	count, err := locator.Count()
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", nil
	}
	return locator.First().TextContent()
}
