package validation

import (
	"strings"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
)

// ValidateCreateDividend validates a dividend creation request.
//
// Required fields:
//   - symbol: Must be non-empty
//   - amount: Must be positive
//   - date: Must be in YYYY-MM-DD format
func ValidateCreateDividend(req request.CreateDividendRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	checkDate(errors, "date", req.Date)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
