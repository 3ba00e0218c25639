package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/storefrontqa/relatedcheck/internal/models"
	"github.com/storefrontqa/relatedcheck/internal/validation"
)

// ValidateHandler evaluates a submitted listing snapshot against the
// configured rule set
type ValidateHandler struct {
	rules models.ValidationRuleSet
}

// NewValidateHandler creates a new validate handler
func NewValidateHandler(rules models.ValidationRuleSet) *ValidateHandler {
	return &ValidateHandler{
		rules: rules,
	}
}

// ItemPayload is one extracted product card in a validation request
type ItemPayload struct {
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	PriceCents      int64    `json:"priceCents"`
	HasImage        bool     `json:"hasImage"`
	HasVisibleTitle bool     `json:"hasVisibleTitle"`
	HasVisiblePrice bool     `json:"hasVisiblePrice"`
	Actions         []string `json:"actions,omitempty"`
}

// RulesPayload optionally overrides the configured rule set for one request
type RulesPayload struct {
	ExpectedCategory      string  `json:"expectedCategory"`
	BasePriceCents        int64   `json:"basePriceCents"`
	ToleranceFraction     float64 `json:"toleranceFraction"`
	MaxItems              int     `json:"maxItems"`
	RequireFieldsComplete bool    `json:"requireFieldsComplete"`
}

// ValidateRequest is the request body for POST /api/validate
type ValidateRequest struct {
	Items              []ItemPayload `json:"items"`
	NoResultsIndicator bool          `json:"noResultsIndicatorPresent"`
	Rules              *RulesPayload `json:"rules,omitempty"`
}

// ItemResultPayload mirrors one item's evaluation outcome
type ItemResultPayload struct {
	Index      int      `json:"index"`
	CategoryOk bool     `json:"categoryOk"`
	PriceOk    bool     `json:"priceOk"`
	FieldsOk   bool     `json:"fieldsOk"`
	Reasons    []string `json:"reasons,omitempty"`
}

// SectionResultPayload mirrors the section-level evaluation outcome
type SectionResultPayload struct {
	ItemCount      int      `json:"itemCount"`
	CountOk        bool     `json:"countOk"`
	EmptyHandledOk bool     `json:"emptyHandledOk"`
	Reasons        []string `json:"reasons,omitempty"`
}

// ValidateResponse is the response body for POST /api/validate
type ValidateResponse struct {
	OverallPass bool                 `json:"overallPass"`
	ItemResults []ItemResultPayload  `json:"itemResults"`
	Section     SectionResultPayload `json:"section"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ServeHTTP handles the validation request
func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	snapshot := make(models.ListingSnapshot, 0, len(req.Items))
	for _, item := range req.Items {
		snapshot = append(snapshot, toProductItem(item))
	}

	rules := h.rules
	if req.Rules != nil {
		rules = models.ValidationRuleSet{
			ExpectedCategory:      req.Rules.ExpectedCategory,
			BasePrice:             req.Rules.BasePriceCents,
			ToleranceFraction:     req.Rules.ToleranceFraction,
			MaxItems:              req.Rules.MaxItems,
			RequireFieldsComplete: req.Rules.RequireFieldsComplete,
		}
	}

	report, err := validation.Evaluate(snapshot, rules, req.NoResultsIndicator)
	if err != nil {
		var configErr *models.ConfigurationError
		if errors.As(err, &configErr) {
			sendErrorResponse(w, configErr.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error evaluating snapshot: %v", err)
		sendErrorResponse(w, "Failed to evaluate snapshot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toValidateResponse(report)); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// toProductItem maps a request item onto the domain type
func toProductItem(p ItemPayload) models.ProductItem {
	item := models.ProductItem{
		Title:           p.Title,
		Category:        p.Category,
		Price:           p.PriceCents,
		HasImage:        p.HasImage,
		HasVisibleTitle: p.HasVisibleTitle,
		HasVisiblePrice: p.HasVisiblePrice,
	}
	for _, action := range p.Actions {
		item.Actions = append(item.Actions, models.Action(action))
	}
	return item
}

// toValidateResponse maps a report onto the response payload
func toValidateResponse(report *models.ValidationReport) ValidateResponse {
	resp := ValidateResponse{
		OverallPass: report.OverallPass,
		ItemResults: make([]ItemResultPayload, 0, len(report.ItemResults)),
		Section: SectionResultPayload{
			ItemCount:      report.Section.ItemCount,
			CountOk:        report.Section.CountOk,
			EmptyHandledOk: report.Section.EmptyHandledOk,
			Reasons:        report.Section.Reasons,
		},
	}
	for _, item := range report.ItemResults {
		resp.ItemResults = append(resp.ItemResults, ItemResultPayload{
			Index:      item.Index,
			CategoryOk: item.CategoryOk,
			PriceOk:    item.PriceOk,
			FieldsOk:   item.FieldsOk,
			Reasons:    item.Reasons,
		})
	}
	return resp
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
