package model

import "time"

// Quote is a point-in-time market price snapshot for a symbol.
// Quotes are fetched fresh for every valuation cycle and never persisted;
// any caching is the quote adapter's concern.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	PreviousClose float64   `json:"previousClose"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
	Currency      Currency  `json:"currency"`
	Timestamp     time.Time `json:"timestamp"`
}

// HistoricalPrice is a single day's OHLCV data point for a symbol.
type HistoricalPrice struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}
