package models

import "fmt"

// Action identifies an interactive control on a related-product card
type Action string

// Interactive actions a card can expose
const (
	ActionAddToCart      Action = "add-to-cart"
	ActionAddToWatchlist Action = "add-to-watchlist"
)

// ProductItem represents one displayed related-product card as extracted by
// the page driver. Text fields hold the raw extracted strings; trimming
// happens during evaluation, not at capture time.
type ProductItem struct {
	Title           string
	Category        string
	Price           int64 // minor units (cents)
	HasImage        bool
	HasVisibleTitle bool
	HasVisiblePrice bool
	Actions         []Action
}

// HasAction returns true if the card exposes the given interactive action
func (p ProductItem) HasAction(action Action) bool {
	for _, a := range p.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// ListingSnapshot is one capture of a related-products section at a point in
// time. Item order matches the on-page rendering. The validation engine
// never mutates a snapshot.
type ListingSnapshot []ProductItem

// FormatPrice renders an amount in minor units as a decimal string
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}
