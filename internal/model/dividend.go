package model

import "time"

// Dividend is a user-recorded dividend payment received for a symbol.
type Dividend struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Amount    float64   `json:"amount"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// UpcomingDividend is a predicted future payout, derived from a static
// symbol-to-payout-months schedule and the user's current holdings.
type UpcomingDividend struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Date     string  `json:"date"` // YYYY-MM-DD, approximate
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	Quantity float64 `json:"quantity"`
}
