package validation

import (
	"strings"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
)

// ValidateCreateGoal validates a goal creation request.
//
// Required fields:
//   - name: Must be non-empty
//   - targetAmount: Must be positive
//
// TargetDate is optional but must be YYYY-MM-DD when supplied.
func ValidateCreateGoal(req request.CreateGoalRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if req.TargetAmount <= 0 {
		errors["targetAmount"] = "targetAmount must be positive"
	}

	if strings.TrimSpace(req.TargetDate) != "" {
		checkDate(errors, "targetDate", req.TargetDate)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateGoal validates a goal update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateGoal(req request.UpdateGoalRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}

	if req.TargetAmount != nil && *req.TargetAmount <= 0 {
		errors["targetAmount"] = "targetAmount must be positive"
	}

	if req.TargetDate != nil && strings.TrimSpace(*req.TargetDate) != "" {
		checkDate(errors, "targetDate", *req.TargetDate)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
