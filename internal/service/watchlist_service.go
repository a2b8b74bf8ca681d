package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/repository"
)

// WatchedSymbol is a watchlist entry paired with its latest quote, when one
// could be fetched.
type WatchedSymbol struct {
	model.WatchlistItem
	Quote *model.Quote `json:"quote"`
}

// WatchlistService manages watched symbols and decorates them with quotes.
type WatchlistService struct {
	watchlistRepo *repository.WatchlistRepository
	quoteService  *QuoteService
}

// NewWatchlistService creates a new WatchlistService with the provided dependencies.
func NewWatchlistService(
	watchlistRepo *repository.WatchlistRepository,
	quoteService *QuoteService,
) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		quoteService:  quoteService,
	}
}

// GetWatchlist retrieves all watched symbols with their current quotes.
// Symbols whose quote could not be fetched are returned with a nil Quote
// rather than failing the whole request.
func (s *WatchlistService) GetWatchlist(ctx context.Context) ([]WatchedSymbol, error) {
	items, err := s.watchlistRepo.GetWatchlist()
	if err != nil {
		return nil, err
	}

	symbols := make([]string, len(items))
	for i, item := range items {
		symbols[i] = item.Symbol
	}

	quotes := s.quoteService.FetchQuotes(ctx, symbols)

	watched := make([]WatchedSymbol, len(items))
	for i, item := range items {
		watched[i] = WatchedSymbol{WatchlistItem: item}
		if quote, ok := quotes[item.Symbol]; ok {
			q := quote
			watched[i].Quote = &q
		}
	}

	return watched, nil
}

// AddSymbol adds a symbol to the watchlist. Duplicate symbols are rejected.
func (s *WatchlistService) AddSymbol(symbol, name string) (model.WatchlistItem, error) {
	exists, err := s.watchlistRepo.HasSymbol(symbol)
	if err != nil {
		return model.WatchlistItem{}, err
	}
	if exists {
		return model.WatchlistItem{}, apperrors.ErrWatchlistDuplicate
	}

	item := model.WatchlistItem{
		ID:      uuid.NewString(),
		Symbol:  symbol,
		Name:    name,
		AddedAt: time.Now().UTC(),
	}

	if err := s.watchlistRepo.CreateItem(item); err != nil {
		return model.WatchlistItem{}, err
	}
	return item, nil
}

// RemoveItem removes a watchlist entry by ID.
func (s *WatchlistService) RemoveItem(id string) error {
	return s.watchlistRepo.DeleteItem(id)
}
