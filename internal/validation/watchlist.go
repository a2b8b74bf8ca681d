package validation

import (
	"strings"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
)

// ValidateAddWatchlistItem validates a watchlist addition request.
//
// Required fields:
//   - symbol: Must be non-empty
func ValidateAddWatchlistItem(req request.AddWatchlistItemRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
