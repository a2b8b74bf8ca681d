package validation

import (
	"fmt"
	"strings"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[string]bool{
	"buy": true, "sell": true, "dividend": true,
}

// ValidateCreateTransaction validates a transaction creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - symbol: Must be non-empty
//   - date: Must be in YYYY-MM-DD format
//   - type: Must be one of: buy, sell, dividend
//   - quantity: Must be positive
//   - price: Must be non-negative
//
// CostBasis is optional; a sell without one is treated as a zero-gain event
// downstream, so it is only checked for sign here.
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	checkDate(errors, "date", req.Date)

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !ValidTransactionType[req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Quantity <= 0 {
		errors["quantity"] = "quantity must be positive"
	}

	if req.Price < 0 {
		errors["price"] = "price cannot be negative"
	}

	if req.CostBasis < 0 {
		errors["costBasis"] = "costBasis cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
