package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api"
	"github.com/maouM-cmd/portfolio-dashboard/internal/backup"
	"github.com/maouM-cmd/portfolio-dashboard/internal/config"
	"github.com/maouM-cmd/portfolio-dashboard/internal/database"
	"github.com/maouM-cmd/portfolio-dashboard/internal/repository"
	"github.com/maouM-cmd/portfolio-dashboard/internal/scheduler"
	"github.com/maouM-cmd/portfolio-dashboard/internal/sector"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
	"github.com/maouM-cmd/portfolio-dashboard/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and run migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	holdingRepo := repository.NewHoldingRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	dividendRepo := repository.NewDividendRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)

	// Quote source
	yahooClient := yahoo.NewFinanceClient(
		cfg.Quotes.RequestsPerSecond,
		time.Duration(cfg.Quotes.CacheTTLSeconds)*time.Second,
	)

	// Create services
	systemService := service.NewSystemService(db)
	quoteService := service.NewQuoteService(yahooClient)
	portfolioService := service.NewPortfolioService(
		holdingRepo,
		quoteService,
	)
	transactionService := service.NewTransactionService(
		transactionRepo,
	)
	sectorService := service.NewSectorService(
		portfolioService,
		allocationRepo,
		sector.NewClassifier(sector.DefaultSectorMap()),
	)
	taxService := service.NewTaxService(
		transactionRepo,
		portfolioService,
		cfg.Tax.Rate,
	)
	alertService := service.NewAlertService(
		alertRepo,
		quoteService,
	)
	dividendService := service.NewDividendService(
		dividendRepo,
		holdingRepo,
		service.DefaultDividendSchedules(),
	)
	goalService := service.NewGoalService(
		goalRepo,
		portfolioService,
	)
	watchlistService := service.NewWatchlistService(
		watchlistRepo,
		quoteService,
	)
	backupService := backup.NewService(db, cfg.Backup.FernetKey)

	// Background alert evaluation
	sched, err := scheduler.New(cfg.Scheduler.RefreshSpec, alertService)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Portfolio:   portfolioService,
		Transaction: transactionService,
		Sector:      sectorService,
		Tax:         taxService,
		Alert:       alertService,
		Dividend:    dividendService,
		Goal:        goalService,
		Watchlist:   watchlistService,
		Quote:       quoteService,
		Backup:      backupService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
