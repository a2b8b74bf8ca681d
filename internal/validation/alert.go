package validation

import (
	"fmt"
	"strings"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
)

// ValidAlertCondition contains the allowed alert condition values.
var ValidAlertCondition = map[string]bool{
	"above": true, "below": true,
}

// ValidateCreateAlert validates an alert creation request.
//
// Required fields:
//   - symbol: Must be non-empty
//   - condition: Must be one of: above, below
//   - targetPrice: Must be positive
func ValidateCreateAlert(req request.CreateAlertRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	}

	if strings.TrimSpace(req.Condition) == "" {
		errors["condition"] = "condition is required"
	} else if !ValidAlertCondition[req.Condition] {
		errors["condition"] = fmt.Sprintf("invalid condition: %s", req.Condition)
	}

	if req.TargetPrice <= 0 {
		errors["targetPrice"] = "targetPrice must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
