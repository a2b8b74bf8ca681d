package model

// Currency is an ISO 4217 currency code. The tracker supports Japanese yen
// and US dollars, matching the two markets the quote source covers.
type Currency string

const (
	JPY Currency = "JPY"
	USD Currency = "USD"
)

// Holding represents a user-recorded position in a security.
// Quantity and PurchasePrice are per the user's own records; a holding with
// quantity zero is treated as logically deleted and excluded from valuation.
type Holding struct {
	ID            string   `json:"id"`
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	Quantity      float64  `json:"quantity"`
	PurchasePrice float64  `json:"purchasePrice"` // cost basis per unit
	PurchaseDate  string   `json:"purchaseDate"`  // YYYY-MM-DD
	Currency      Currency `json:"currency"`
}

// ValuedHolding is a Holding enriched with live-quote valuation fields.
// It is derived on every valuation pass and never persisted.
type ValuedHolding struct {
	Holding
	CurrentPrice     float64  `json:"currentPrice"`
	CurrentValue     float64  `json:"currentValue"`
	CostBasis        float64  `json:"costBasis"`
	Pnl              float64  `json:"pnl"`
	PnlPercent       float64  `json:"-"` // NaN when cost basis is zero; JSON via guarded pointer
	DayChange        float64  `json:"dayChange"`
	DayChangePercent float64  `json:"dayChangePercent"`
	QuoteCurrency    Currency `json:"quoteCurrency"`
}

// PortfolioSummary aggregates per-holding valuations.
// TotalPnlPercent is NaN when TotalCost is zero.
type PortfolioSummary struct {
	TotalValue      float64         `json:"totalValue"`
	TotalCost       float64         `json:"totalCost"`
	TotalPnl        float64         `json:"totalPnl"`
	TotalPnlPercent float64         `json:"-"`
	Holdings        []ValuedHolding `json:"holdings"`
}
