package validation

import (
	"fmt"
	"strings"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
)

// ValidCurrency contains the allowed currency values.
var ValidCurrency = map[string]bool{
	"JPY": true, "USD": true,
}

// ValidateCreateHolding validates a holding creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - symbol: Must be non-empty
//   - quantity: Must be positive
//   - purchasePrice: Must be non-negative
//   - purchaseDate: Must be in YYYY-MM-DD format
//   - currency: Must be one of: JPY, USD
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if req.Quantity <= 0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.PurchasePrice < 0 {
		errors["purchasePrice"] = "purchasePrice cannot be negative"
	}

	checkDate(errors, "purchaseDate", req.PurchaseDate)

	if !ValidCurrency[req.Currency] {
		errors["currency"] = fmt.Sprintf("invalid currency: %s", req.Currency)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateHolding validates a holding update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateHolding(req request.UpdateHoldingRequest) error {
	errors := make(map[string]string)

	if req.Symbol != nil && strings.TrimSpace(*req.Symbol) == "" {
		errors["symbol"] = "symbol cannot be empty"
	}

	// Quantity zero is allowed on update: it soft-deletes the position.
	if req.Quantity != nil && *req.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}

	if req.PurchasePrice != nil && *req.PurchasePrice < 0 {
		errors["purchasePrice"] = "purchasePrice cannot be negative"
	}

	if req.PurchaseDate != nil {
		checkDate(errors, "purchaseDate", *req.PurchaseDate)
	}

	if req.Currency != nil && !ValidCurrency[*req.Currency] {
		errors["currency"] = fmt.Sprintf("invalid currency: %s", *req.Currency)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
