package service_test

import (
	"context"
	"math"
	"testing"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/testutil"
)

// TestTaxService_AnnualSummary tests the full estimate over stored data.
//
// WHY: The service joins the transaction log with live valuations. The year
// filter must scope realized gains while unrealized gains always reflect the
// current holdings, and the configured rate must flow through both sides.
func TestTaxService_AnnualSummary(t *testing.T) {
	t.Run("estimates realized tax for the requested year", func(t *testing.T) {
		// Setup: one sell in 2025 with a 500 gain, one in 2024
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestTaxService(t, db, testutil.NewMockQuoteSource())

		testutil.NewTransaction().
			WithType(model.TransactionSell).WithSymbol("HUM").
			WithQuantity(10).WithPrice(400).WithCostBasis(350).WithDate("2025-06-01").
			Build(t, db)
		testutil.NewTransaction().
			WithType(model.TransactionSell).WithSymbol("HUM").
			WithQuantity(5).WithPrice(300).WithCostBasis(200).WithDate("2024-02-01").
			Build(t, db)

		// Execute
		summary, err := svc.AnnualSummary(context.Background(), 2025)

		// Assert: gain 10*(400-350) = 500, tax 500*0.20315
		if err != nil {
			t.Fatalf("AnnualSummary() returned unexpected error: %v", err)
		}
		if summary.Year != 2025 {
			t.Errorf("Expected year 2025, got %d", summary.Year)
		}
		if summary.Realized.TotalGain != 500 {
			t.Errorf("Expected realized gain 500, got %v", summary.Realized.TotalGain)
		}
		if math.Abs(summary.Realized.TaxAmount-101.575) > 1e-9 {
			t.Errorf("Expected tax 101.575, got %v", summary.Realized.TaxAmount)
		}
		if len(summary.Realized.Details) != 1 {
			t.Errorf("Expected 1 detail row for 2025, got %d", len(summary.Realized.Details))
		}
	})

	t.Run("unrealized gains reflect current holdings regardless of year", func(t *testing.T) {
		// Setup: a holding with a 30000 paper gain, no transactions
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 1500, model.JPY)
		svc := testutil.NewTestTaxService(t, db, source)

		testutil.NewHolding().WithSymbol("7203.T").WithQuantity(100).WithPurchasePrice(1200).Build(t, db)

		// Execute
		summary, err := svc.AnnualSummary(context.Background(), 2020)

		// Assert
		if err != nil {
			t.Fatalf("AnnualSummary() returned unexpected error: %v", err)
		}
		if summary.Unrealized.TotalUnrealizedGain != 30000 {
			t.Errorf("Expected unrealized gain 30000, got %v", summary.Unrealized.TotalUnrealizedGain)
		}
		if math.Abs(summary.Unrealized.PotentialTax-30000*0.20315) > 1e-9 {
			t.Errorf("Expected potential tax %v, got %v", 30000*0.20315, summary.Unrealized.PotentialTax)
		}
	})
}
