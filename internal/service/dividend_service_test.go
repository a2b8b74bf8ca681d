package service_test

import (
	"testing"
	"time"

	"github.com/maouM-cmd/portfolio-dashboard/internal/testutil"
)

// TestDividendService_UpcomingDividends tests payout prediction.
//
// WHY: Predictions come from a static month schedule joined against current
// holdings. The twelve-month horizon, the 25th-of-month approximation, and
// the silent skip of unscheduled symbols all need to hold.
func TestDividendService_UpcomingDividends(t *testing.T) {
	// A fixed reference date keeps the window deterministic.
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("predicts scheduled payouts within twelve months", func(t *testing.T) {
		// Setup: 3003.T pays in March and September
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)

		testutil.NewHolding().WithSymbol("3003.T").WithName("Hulic").WithQuantity(200).Build(t, db)

		// Execute
		upcoming, err := svc.UpcomingDividends(now)

		// Assert: 2026-03-25 and 2026-09-25
		if err != nil {
			t.Fatalf("UpcomingDividends() returned unexpected error: %v", err)
		}
		if len(upcoming) != 2 {
			t.Fatalf("Expected 2 upcoming dividends, got %d", len(upcoming))
		}
		if upcoming[0].Date != "2026-03-25" {
			t.Errorf("Expected first payout 2026-03-25, got %s", upcoming[0].Date)
		}
		if upcoming[1].Date != "2026-09-25" {
			t.Errorf("Expected second payout 2026-09-25, got %s", upcoming[1].Date)
		}
		if upcoming[0].Quantity != 200 {
			t.Errorf("Expected quantity 200, got %v", upcoming[0].Quantity)
		}
	})

	t.Run("ignores symbols without a schedule", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)

		testutil.NewHolding().WithSymbol("7203.T").Build(t, db)

		// Execute
		upcoming, err := svc.UpcomingDividends(now)

		// Assert
		if err != nil {
			t.Fatalf("UpcomingDividends() returned unexpected error: %v", err)
		}
		if len(upcoming) != 0 {
			t.Errorf("Expected no upcoming dividends, got %d", len(upcoming))
		}
	})

	t.Run("wraps the schedule into the next year", func(t *testing.T) {
		// Setup: from December, January's payout falls in the next year
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)

		testutil.NewHolding().WithSymbol("HUM").WithName("Humana").WithQuantity(10).Build(t, db)

		december := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

		// Execute
		upcoming, err := svc.UpcomingDividends(december)

		// Assert: HUM pays 1, 4, 7, 10 — all four fall in 2027 before December
		if err != nil {
			t.Fatalf("UpcomingDividends() returned unexpected error: %v", err)
		}
		if len(upcoming) != 4 {
			t.Fatalf("Expected 4 upcoming dividends, got %d", len(upcoming))
		}
		if upcoming[0].Date != "2027-01-25" {
			t.Errorf("Expected first payout 2027-01-25, got %s", upcoming[0].Date)
		}
		for _, u := range upcoming {
			if u.Year != 2027 {
				t.Errorf("Expected all payouts in 2027, got %d", u.Year)
			}
		}
	})

	t.Run("results are sorted by date across symbols", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)

		testutil.NewHolding().WithSymbol("3003.T").Build(t, db)
		testutil.NewHolding().WithSymbol("HUM").Build(t, db)

		// Execute
		upcoming, err := svc.UpcomingDividends(now)

		// Assert
		if err != nil {
			t.Fatalf("UpcomingDividends() returned unexpected error: %v", err)
		}
		for i := 1; i < len(upcoming); i++ {
			if upcoming[i-1].Date > upcoming[i].Date {
				t.Errorf("Results out of order: %s before %s", upcoming[i-1].Date, upcoming[i].Date)
			}
		}
	})
}

// TestDividendService_Totals tests recorded dividend accounting.
//
// WHY: The running total backs the income view; it must sum every record and
// come back zero, not an error, for an empty table.
func TestDividendService_Totals(t *testing.T) {
	t.Run("sums recorded dividends", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)

		testutil.CreateDividend(t, db, "3003.T", 2500, "2026-03-25")
		testutil.CreateDividend(t, db, "HUM", 880.5, "2026-04-25")

		// Execute
		total, err := svc.GetTotalDividends()

		// Assert
		if err != nil {
			t.Fatalf("GetTotalDividends() returned unexpected error: %v", err)
		}
		if total != 3380.5 {
			t.Errorf("Expected total 3380.5, got %v", total)
		}
	})

	t.Run("returns zero for an empty table", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDividendService(t, db)

		// Execute
		total, err := svc.GetTotalDividends()

		// Assert
		if err != nil {
			t.Fatalf("GetTotalDividends() returned unexpected error: %v", err)
		}
		if total != 0 {
			t.Errorf("Expected total 0, got %v", total)
		}
	})
}
