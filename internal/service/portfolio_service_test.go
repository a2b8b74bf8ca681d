package service_test

import (
	"context"
	"math"
	"testing"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/testutil"
)

// TestPortfolioService_GetHoldings tests holding retrieval.
//
// WHY: Holding retrieval feeds every valuation pass. This ensures the service
// correctly filters logically-deleted (zero quantity) positions while keeping
// everything else.
func TestPortfolioService_GetHoldings(t *testing.T) {
	t.Run("returns empty slice when no holdings exist", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, testutil.NewMockQuoteSource())

		// Execute
		holdings, err := svc.GetHoldings()

		// Assert
		if err != nil {
			t.Fatalf("GetHoldings() returned unexpected error: %v", err)
		}
		if len(holdings) != 0 {
			t.Errorf("Expected empty slice, got %d holdings", len(holdings))
		}
	})

	t.Run("excludes zero-quantity holdings", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, testutil.NewMockQuoteSource())

		kept := testutil.NewHolding().WithSymbol("7203.T").Build(t, db)
		testutil.NewHolding().WithSymbol("6758.T").WithQuantity(0).Build(t, db)

		// Execute
		holdings, err := svc.GetHoldings()

		// Assert
		if err != nil {
			t.Fatalf("GetHoldings() returned unexpected error: %v", err)
		}
		if len(holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(holdings))
		}
		if holdings[0].ID != kept.ID {
			t.Errorf("Expected holding %s, got %s", kept.ID, holdings[0].ID)
		}
	})
}

// TestPortfolioService_Summary tests the end-to-end valuation path.
//
// WHY: Summary is the core read of the whole application: it joins stored
// holdings with live quotes and must survive partial quote failures without
// failing the request or inventing values for unquoted positions.
func TestPortfolioService_Summary(t *testing.T) {
	t.Run("values holdings against current quotes", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 1500, model.JPY)
		svc := testutil.NewTestPortfolioService(t, db, source)

		testutil.NewHolding().WithSymbol("7203.T").WithQuantity(100).WithPurchasePrice(1200).Build(t, db)

		// Execute
		summary, err := svc.Summary(context.Background(), "")

		// Assert
		if err != nil {
			t.Fatalf("Summary() returned unexpected error: %v", err)
		}
		if summary.TotalValue != 150000 {
			t.Errorf("Expected total value 150000, got %v", summary.TotalValue)
		}
		if summary.TotalCost != 120000 {
			t.Errorf("Expected total cost 120000, got %v", summary.TotalCost)
		}
		if summary.TotalPnl != 30000 {
			t.Errorf("Expected total pnl 30000, got %v", summary.TotalPnl)
		}
		if summary.TotalPnlPercent != 25.0 {
			t.Errorf("Expected total pnl percent 25, got %v", summary.TotalPnlPercent)
		}
	})

	t.Run("excludes holdings whose quote is unavailable", func(t *testing.T) {
		// Setup: only one of two symbols has a quote
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 1500, model.JPY)
		svc := testutil.NewTestPortfolioService(t, db, source)

		testutil.NewHolding().WithSymbol("7203.T").WithQuantity(100).WithPurchasePrice(1200).Build(t, db)
		testutil.NewHolding().WithSymbol("UNKNOWN").WithQuantity(50).WithPurchasePrice(10).Build(t, db)

		// Execute
		summary, err := svc.Summary(context.Background(), "")

		// Assert: the unquoted holding contributes nothing, silently
		if err != nil {
			t.Fatalf("Summary() returned unexpected error: %v", err)
		}
		if len(summary.Holdings) != 1 {
			t.Fatalf("Expected 1 valued holding, got %d", len(summary.Holdings))
		}
		if summary.TotalValue != 150000 {
			t.Errorf("Expected total value 150000, got %v", summary.TotalValue)
		}
	})

	t.Run("reports NaN percent on zero cost basis", func(t *testing.T) {
		// Setup: free shares, cost basis zero
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 1500, model.JPY)
		svc := testutil.NewTestPortfolioService(t, db, source)

		testutil.NewHolding().WithSymbol("7203.T").WithQuantity(10).WithPurchasePrice(0).Build(t, db)

		// Execute
		summary, err := svc.Summary(context.Background(), "")

		// Assert
		if err != nil {
			t.Fatalf("Summary() returned unexpected error: %v", err)
		}
		if !math.IsNaN(summary.TotalPnlPercent) {
			t.Errorf("Expected NaN total pnl percent, got %v", summary.TotalPnlPercent)
		}
	})

	t.Run("converts to display currency at the live rate", func(t *testing.T) {
		// Setup: one JPY and one USD holding, rate 150
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().
			WithQuote("7203.T", 1500, model.JPY).
			WithQuote("HUM", 400, model.USD)
		source.UsdJpyRate = 150
		svc := testutil.NewTestPortfolioService(t, db, source)

		testutil.NewHolding().WithSymbol("7203.T").WithQuantity(100).WithPurchasePrice(1200).Build(t, db)
		testutil.NewHolding().
			WithSymbol("HUM").WithQuantity(10).WithPurchasePrice(350).WithCurrency(model.USD).
			Build(t, db)

		// Execute
		summary, err := svc.Summary(context.Background(), model.JPY)

		// Assert: 150000 JPY + 4000 USD * 150
		if err != nil {
			t.Fatalf("Summary() returned unexpected error: %v", err)
		}
		if summary.TotalValue != 150000+4000*150 {
			t.Errorf("Expected total value %v, got %v", 150000+4000*150.0, summary.TotalValue)
		}
	})
}

// TestPortfolioService_UpdateHolding tests partial updates.
//
// WHY: Setting quantity to zero is the soft-delete path; the update must keep
// the remaining fields intact rather than overwriting them with zero values.
func TestPortfolioService_UpdateHolding(t *testing.T) {
	t.Run("applies only the requested changes", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db, testutil.NewMockQuoteSource())

		created := testutil.NewHolding().WithSymbol("7203.T").WithQuantity(100).Build(t, db)

		// Execute
		updated, err := svc.UpdateHolding(created.ID, func(h *model.Holding) {
			h.Quantity = 0
		})

		// Assert
		if err != nil {
			t.Fatalf("UpdateHolding() returned unexpected error: %v", err)
		}
		if updated.Quantity != 0 {
			t.Errorf("Expected quantity 0, got %v", updated.Quantity)
		}
		if updated.Symbol != created.Symbol {
			t.Errorf("Expected symbol unchanged, got %s", updated.Symbol)
		}

		// The soft-deleted holding no longer appears in the active set
		holdings, err := svc.GetHoldings()
		if err != nil {
			t.Fatalf("GetHoldings() returned unexpected error: %v", err)
		}
		if len(holdings) != 0 {
			t.Errorf("Expected no active holdings, got %d", len(holdings))
		}
	})
}
