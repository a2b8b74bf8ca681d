package model

import "time"

// Transaction types recorded in the append-only transaction log.
const (
	TransactionBuy      = "buy"
	TransactionSell     = "sell"
	TransactionDividend = "dividend"
)

// Transaction represents a single buy, sell, or dividend event.
// The log is append-only; deletion by ID is a hard remove.
//
// CostBasis is the per-unit acquisition cost recorded on sell transactions,
// used by the tax estimator. A sell without a recorded cost basis is treated
// as a zero-gain event, not an error.
type Transaction struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Symbol    string    `json:"symbol"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
	CostBasis float64   `json:"costBasis,omitempty"`
	Total     float64   `json:"total"` // Quantity * Price
	Date      string    `json:"date"`  // YYYY-MM-DD
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
