package testutil

import (
	"database/sql"
	"testing"

	"github.com/maouM-cmd/portfolio-dashboard/internal/repository"
	"github.com/maouM-cmd/portfolio-dashboard/internal/sector"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
	"github.com/maouM-cmd/portfolio-dashboard/internal/tax"
)

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(repository.NewTransactionRepository(db))
}

func NewTestPortfolioService(t *testing.T, db *sql.DB, source service.QuoteSource) *service.PortfolioService {
	t.Helper()

	holdingRepo := repository.NewHoldingRepository(db)
	quoteService := service.NewQuoteService(source)

	return service.NewPortfolioService(
		holdingRepo,
		quoteService,
	)
}

func NewTestSectorService(t *testing.T, db *sql.DB, source service.QuoteSource) *service.SectorService {
	t.Helper()

	allocationRepo := repository.NewAllocationRepository(db)
	classifier := sector.NewClassifier(sector.DefaultSectorMap())

	return service.NewSectorService(
		NewTestPortfolioService(t, db, source),
		allocationRepo,
		classifier,
	)
}

func NewTestTaxService(t *testing.T, db *sql.DB, source service.QuoteSource) *service.TaxService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTaxService(
		transactionRepo,
		NewTestPortfolioService(t, db, source),
		tax.DefaultRate,
	)
}

func NewTestAlertService(t *testing.T, db *sql.DB, source service.QuoteSource) *service.AlertService {
	t.Helper()

	alertRepo := repository.NewAlertRepository(db)
	quoteService := service.NewQuoteService(source)

	return service.NewAlertService(
		alertRepo,
		quoteService,
	)
}

func NewTestDividendService(t *testing.T, db *sql.DB) *service.DividendService {
	t.Helper()

	dividendRepo := repository.NewDividendRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)

	return service.NewDividendService(
		dividendRepo,
		holdingRepo,
		service.DefaultDividendSchedules(),
	)
}

func NewTestGoalService(t *testing.T, db *sql.DB, source service.QuoteSource) *service.GoalService {
	t.Helper()

	goalRepo := repository.NewGoalRepository(db)

	return service.NewGoalService(
		goalRepo,
		NewTestPortfolioService(t, db, source),
	)
}

func NewTestWatchlistService(t *testing.T, db *sql.DB, source service.QuoteSource) *service.WatchlistService {
	t.Helper()

	watchlistRepo := repository.NewWatchlistRepository(db)
	quoteService := service.NewQuoteService(source)

	return service.NewWatchlistService(
		watchlistRepo,
		quoteService,
	)
}
