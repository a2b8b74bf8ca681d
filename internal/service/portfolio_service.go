package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/repository"
	"github.com/maouM-cmd/portfolio-dashboard/internal/valuation"
)

// PortfolioService handles portfolio-level business logic: it loads the
// stored holdings, resolves live quotes for them, and runs the valuation
// engine to produce summaries in the requested display currency.
type PortfolioService struct {
	holdingRepo  *repository.HoldingRepository
	quoteService *QuoteService
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	holdingRepo *repository.HoldingRepository,
	quoteService *QuoteService,
) *PortfolioService {
	return &PortfolioService{
		holdingRepo:  holdingRepo,
		quoteService: quoteService,
	}
}

// GetHoldings retrieves the stored holdings, excluding logically-deleted
// (zero quantity) entries.
func (s *PortfolioService) GetHoldings() ([]model.Holding, error) {
	holdings, err := s.holdingRepo.GetHoldings()
	if err != nil {
		return nil, err
	}

	active := make([]model.Holding, 0, len(holdings))
	for _, h := range holdings {
		if h.Quantity > 0 {
			active = append(active, h)
		}
	}
	return active, nil
}

// GetHolding retrieves a single holding by ID.
func (s *PortfolioService) GetHolding(id string) (model.Holding, error) {
	return s.holdingRepo.GetHoldingOnID(id)
}

// CreateHolding stores a new holding and returns it with its generated ID.
func (s *PortfolioService) CreateHolding(h model.Holding) (model.Holding, error) {
	h.ID = uuid.NewString()
	if err := s.holdingRepo.CreateHolding(h); err != nil {
		return model.Holding{}, err
	}
	return h, nil
}

// UpdateHolding applies the non-nil fields of an update onto the stored
// holding. Setting quantity to zero logically deletes the position without
// losing the purchase record.
func (s *PortfolioService) UpdateHolding(id string, apply func(*model.Holding)) (model.Holding, error) {
	holding, err := s.holdingRepo.GetHoldingOnID(id)
	if err != nil {
		return model.Holding{}, err
	}

	apply(&holding)

	if err := s.holdingRepo.UpdateHolding(holding); err != nil {
		return model.Holding{}, err
	}
	return holding, nil
}

// DeleteHolding removes a holding permanently.
func (s *PortfolioService) DeleteHolding(id string) error {
	return s.holdingRepo.DeleteHolding(id)
}

// Summary produces the current portfolio valuation.
//
// Quotes are fetched as one concurrent batch and handed to the valuation
// engine as a fixed snapshot; holdings whose quote could not be fetched are
// excluded from the totals. When displayCurrency is non-empty every monetary
// field is re-expressed in that currency using the current USD/JPY rate,
// converting per holding before re-summing.
func (s *PortfolioService) Summary(ctx context.Context, displayCurrency model.Currency) (model.PortfolioSummary, error) {
	holdings, err := s.GetHoldings()
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	symbols := make([]string, len(holdings))
	for i, h := range holdings {
		symbols[i] = h.Symbol
	}
	quotes := s.quoteService.FetchQuotes(ctx, symbols)

	summary := valuation.CalculateSummary(holdings, quotes)

	if displayCurrency != "" {
		rate := s.quoteService.GetUsdJpyRate(ctx)
		summary, err = valuation.ConvertToDisplayCurrency(summary, displayCurrency, rate)
		if err != nil {
			return model.PortfolioSummary{}, fmt.Errorf("failed to convert summary: %w", err)
		}
	}

	return summary, nil
}

// ValuedHoldings returns the per-holding valuations without currency
// conversion, for callers that group or analyze in native terms.
func (s *PortfolioService) ValuedHoldings(ctx context.Context) ([]model.ValuedHolding, float64, error) {
	summary, err := s.Summary(ctx, "")
	if err != nil {
		return nil, 0, err
	}
	return summary.Holdings, summary.TotalValue, nil
}
