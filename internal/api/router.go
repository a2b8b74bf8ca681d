package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/handlers"
	custommiddleware "github.com/maouM-cmd/portfolio-dashboard/internal/api/middleware"
	"github.com/maouM-cmd/portfolio-dashboard/internal/backup"
	"github.com/maouM-cmd/portfolio-dashboard/internal/config"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
)

// Services bundles the service layer dependencies the router wires into
// handlers.
type Services struct {
	System      *service.SystemService
	Portfolio   *service.PortfolioService
	Transaction *service.TransactionService
	Sector      *service.SectorService
	Tax         *service.TaxService
	Alert       *service.AlertService
	Dividend    *service.DividendService
	Goal        *service.GoalService
	Watchlist   *service.WatchlistService
	Quote       *service.QuoteService
	Backup      *backup.Service
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/holdings", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(svc.Portfolio)
			r.Get("/", holdingHandler.Holdings)
			r.Post("/", holdingHandler.CreateHolding)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", holdingHandler.UpdateHolding)
				r.Delete("/", holdingHandler.DeleteHolding)
			})
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
			r.Get("/", transactionHandler.Transactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)
			r.Get("/summary", portfolioHandler.Summary)
		})

		r.Route("/sectors", func(r chi.Router) {
			sectorHandler := handlers.NewSectorHandler(svc.Sector)
			r.Get("/", sectorHandler.Groups)
			r.Get("/rebalance", sectorHandler.Rebalance)
			r.Get("/analysis", sectorHandler.Analysis)
			r.Get("/targets", sectorHandler.Targets)
			r.Put("/targets", sectorHandler.SetTargets)
		})

		r.Route("/tax", func(r chi.Router) {
			taxHandler := handlers.NewTaxHandler(svc.Tax)
			r.Get("/summary", taxHandler.Summary)
		})

		r.Route("/alerts", func(r chi.Router) {
			alertHandler := handlers.NewAlertHandler(svc.Alert)
			r.Get("/", alertHandler.Alerts)
			r.Post("/", alertHandler.CreateAlert)
			r.Post("/evaluate", alertHandler.Evaluate)
			r.Delete("/triggered", alertHandler.ClearTriggered)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", alertHandler.DeleteAlert)
			})
		})

		r.Route("/dividends", func(r chi.Router) {
			dividendHandler := handlers.NewDividendHandler(svc.Dividend)
			r.Get("/", dividendHandler.Dividends)
			r.Get("/total", dividendHandler.Total)
			r.Get("/upcoming", dividendHandler.Upcoming)
			r.Post("/", dividendHandler.CreateDividend)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", dividendHandler.DeleteDividend)
			})
		})

		r.Route("/goals", func(r chi.Router) {
			goalHandler := handlers.NewGoalHandler(svc.Goal)
			r.Get("/", goalHandler.Goals)
			r.Get("/progress", goalHandler.Progress)
			r.Post("/", goalHandler.CreateGoal)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", goalHandler.UpdateGoal)
				r.Delete("/", goalHandler.DeleteGoal)
			})
		})

		r.Route("/watchlist", func(r chi.Router) {
			watchlistHandler := handlers.NewWatchlistHandler(svc.Watchlist)
			r.Get("/", watchlistHandler.Watchlist)
			r.Post("/", watchlistHandler.AddItem)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", watchlistHandler.RemoveItem)
			})
		})

		r.Route("/quotes", func(r chi.Router) {
			quoteHandler := handlers.NewQuoteHandler(svc.Quote)
			r.Get("/fx/usdjpy", quoteHandler.UsdJpy)
			r.Get("/{symbol}", quoteHandler.Quote)
			r.Get("/{symbol}/history", quoteHandler.History)
		})

		r.Route("/backup", func(r chi.Router) {
			backupHandler := handlers.NewBackupHandler(svc.Backup)
			r.Get("/export", backupHandler.Export)
			r.Get("/export/encrypted", backupHandler.ExportEncrypted)
			r.Post("/import", backupHandler.Import)
			r.Post("/import/encrypted", backupHandler.ImportEncrypted)
		})
	})

	return r
}
