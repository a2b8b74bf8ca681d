package testutil

import (
	"context"
	"time"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// MockQuoteSource is a canned quote source for tests. It satisfies the
// service layer's QuoteSource interface without importing the service
// package, so both internal and external test packages can use it.
type MockQuoteSource struct {
	// Quotes maps symbol to the quote GetQuote returns.
	// Symbols absent from the map fail with ErrQuoteNotFound.
	Quotes map[string]model.Quote
	// History is returned from GetHistory for any symbol.
	History []model.HistoricalPrice
	// UsdJpyRate is returned from GetUsdJpyRate. Zero defaults to 150.
	UsdJpyRate float64
	// CallCount tracks GetQuote invocations.
	CallCount int
}

// NewMockQuoteSource creates a mock with no quotes configured.
func NewMockQuoteSource() *MockQuoteSource {
	return &MockQuoteSource{Quotes: map[string]model.Quote{}}
}

// WithQuote registers a simple quote for a symbol.
func (m *MockQuoteSource) WithQuote(symbol string, price float64, currency model.Currency) *MockQuoteSource {
	m.Quotes[symbol] = model.Quote{
		Symbol:        symbol,
		Name:          symbol,
		Price:         price,
		PreviousClose: price,
		Currency:      currency,
		Timestamp:     time.Now().UTC(),
	}
	return m
}

// GetQuote returns the configured quote or ErrQuoteNotFound.
func (m *MockQuoteSource) GetQuote(_ context.Context, symbol string) (model.Quote, error) {
	m.CallCount++
	quote, ok := m.Quotes[symbol]
	if !ok {
		return model.Quote{}, apperrors.ErrQuoteNotFound
	}
	return quote, nil
}

// GetHistory returns the configured history slice.
func (m *MockQuoteSource) GetHistory(_ context.Context, _, _ string) ([]model.HistoricalPrice, error) {
	return m.History, nil
}

// GetUsdJpyRate returns the configured rate, defaulting to 150.
func (m *MockQuoteSource) GetUsdJpyRate(_ context.Context) float64 {
	if m.UsdJpyRate == 0 {
		return 150
	}
	return m.UsdJpyRate
}
