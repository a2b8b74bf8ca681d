package validation

import (
	"fmt"
	"strings"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
)

// ValidateSetTargets validates a target allocation request. Each target must
// name a sector and carry a percent in [0, 100]. The percents are not
// required to sum to 100; partial targets are allowed and sectors without a
// target simply get no rebalance direction.
func ValidateSetTargets(req request.SetTargetsRequest) error {
	errors := make(map[string]string)

	if len(req.Targets) == 0 {
		errors["targets"] = "targets cannot be empty"
	}

	for sector, percent := range req.Targets {
		if strings.TrimSpace(sector) == "" {
			errors["targets"] = "sector name cannot be empty"
			continue
		}
		if percent < 0 || percent > 100 {
			errors[sector] = fmt.Sprintf("percent must be between 0 and 100, got %v", percent)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
