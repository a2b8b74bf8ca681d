package model

import "time"

// Goal is a user-defined investment target amount, optionally with a deadline.
type Goal struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TargetAmount float64   `json:"targetAmount"`
	TargetDate   string    `json:"targetDate,omitempty"` // YYYY-MM-DD
	CreatedAt    time.Time `json:"createdAt"`
}

// GoalProgress is a Goal evaluated against the current portfolio value.
// ProgressPercent is nil when the target amount is zero.
type GoalProgress struct {
	Goal
	CurrentValue    float64  `json:"currentValue"`
	Remaining       float64  `json:"remaining"`
	ProgressPercent *float64 `json:"progressPercent"`
	Achieved        bool     `json:"achieved"`
}
