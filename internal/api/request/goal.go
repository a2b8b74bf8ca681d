package request

type CreateGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"targetAmount"`
	TargetDate   string  `json:"targetDate"`
}

type UpdateGoalRequest struct {
	Name         *string  `json:"name,omitempty"`
	TargetAmount *float64 `json:"targetAmount,omitempty"`
	TargetDate   *string  `json:"targetDate,omitempty"`
}
