package model

import "time"

// Alert conditions.
const (
	AlertAbove = "above"
	AlertBelow = "below"
)

// Alert statuses. An alert starts active and flips to triggered at most once;
// there is no transition back. Only the alerts evaluator performs the
// transition, which keeps the single-fire invariant in one place.
const (
	AlertStatusActive    = "active"
	AlertStatusTriggered = "triggered"
)

// Alert is a user-defined price threshold watch on a symbol.
type Alert struct {
	ID          string     `json:"id"`
	Symbol      string     `json:"symbol"`
	Condition   string     `json:"condition"` // above | below
	TargetPrice float64    `json:"targetPrice"`
	Status      string     `json:"status"`
	TriggeredAt *time.Time `json:"triggeredAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Triggered reports whether the alert has fired.
func (a Alert) Triggered() bool {
	return a.Status == AlertStatusTriggered
}

// TriggeredAlert pairs a newly-fired alert with the price that fired it,
// so callers can notify without re-fetching the quote.
type TriggeredAlert struct {
	Alert
	CurrentPrice float64 `json:"currentPrice"`
}
