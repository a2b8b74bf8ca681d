package service

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// QuoteSource is the capability contract the services need from the quote
// adapter: current snapshot per symbol, daily history per symbol and range,
// and the USD/JPY exchange rate (which falls back internally and therefore
// never errors).
type QuoteSource interface {
	GetQuote(ctx context.Context, symbol string) (model.Quote, error)
	GetHistory(ctx context.Context, symbol, historyRange string) ([]model.HistoricalPrice, error)
	GetUsdJpyRate(ctx context.Context) float64
}

// QuoteService fans out quote fetches for symbol batches.
type QuoteService struct {
	source QuoteSource
}

// NewQuoteService creates a new QuoteService over the given source.
func NewQuoteService(source QuoteSource) *QuoteService {
	return &QuoteService{source: source}
}

// GetQuote fetches a single symbol's current snapshot.
func (s *QuoteService) GetQuote(ctx context.Context, symbol string) (model.Quote, error) {
	return s.source.GetQuote(ctx, symbol)
}

// GetHistory fetches daily price history for a symbol.
func (s *QuoteService) GetHistory(ctx context.Context, symbol, historyRange string) ([]model.HistoricalPrice, error) {
	return s.source.GetHistory(ctx, symbol, historyRange)
}

// GetUsdJpyRate returns the current USD/JPY rate (or the adapter's fallback).
func (s *QuoteService) GetUsdJpyRate(ctx context.Context) float64 {
	return s.source.GetUsdJpyRate(ctx)
}

// FetchQuotes fetches quotes for a batch of symbols concurrently, one
// independent request per unique symbol.
//
// A failed symbol is logged and omitted from the result rather than failing
// the batch: downstream valuation already treats a missing quote as "value
// unknown, exclude", so omission is the system's failure isolation. The
// returned map is keyed by the requested symbol.
func (s *QuoteService) FetchQuotes(ctx context.Context, symbols []string) map[string]model.Quote {
	unique := make(map[string]struct{}, len(symbols))
	for _, symbol := range symbols {
		if symbol != "" {
			unique[symbol] = struct{}{}
		}
	}

	var mu sync.Mutex
	quotes := make(map[string]model.Quote, len(unique))

	g, ctx := errgroup.WithContext(ctx)
	for symbol := range unique {
		symbol := symbol
		g.Go(func() error {
			quote, err := s.source.GetQuote(ctx, symbol)
			if err != nil {
				log.Printf("quote fetch failed for %s: %v", symbol, err)
				return nil
			}
			mu.Lock()
			quotes[symbol] = quote
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes completion.
	_ = g.Wait()

	return quotes
}
