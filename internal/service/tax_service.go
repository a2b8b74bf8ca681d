package service

import (
	"context"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/repository"
	"github.com/maouM-cmd/portfolio-dashboard/internal/tax"
)

// TaxService produces capital gains tax estimates from the transaction log
// and the current valuation. The rate is configured once at construction;
// output is a planning estimate, not tax advice.
type TaxService struct {
	transactionRepo  *repository.TransactionRepository
	portfolioService *PortfolioService
	taxRate          float64
}

// NewTaxService creates a new TaxService with the provided dependencies and rate.
func NewTaxService(
	transactionRepo *repository.TransactionRepository,
	portfolioService *PortfolioService,
	taxRate float64,
) *TaxService {
	return &TaxService{
		transactionRepo:  transactionRepo,
		portfolioService: portfolioService,
		taxRate:          taxRate,
	}
}

// AnnualSummary computes the tax summary for a year (0 = current year):
// realized gains over that year's sell transactions, unrealized gains over
// the present holdings.
func (s *TaxService) AnnualSummary(ctx context.Context, year int) (model.TaxSummary, error) {
	transactions, err := s.transactionRepo.GetTransactions()
	if err != nil {
		return model.TaxSummary{}, err
	}

	valued, _, err := s.portfolioService.ValuedHoldings(ctx)
	if err != nil {
		return model.TaxSummary{}, err
	}

	return tax.AnnualSummary(transactions, valued, year, s.taxRate), nil
}
