package service_test

import (
	"context"
	"testing"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/testutil"
)

// TestAlertService_EvaluateNow tests the evaluation cycle end to end.
//
// WHY: Alerts must fire exactly once: the boundary is inclusive, the
// transition is persisted, and an already-triggered alert never fires again
// on later passes even while the condition keeps holding.
func TestAlertService_EvaluateNow(t *testing.T) {
	t.Run("fires an above alert at the boundary", func(t *testing.T) {
		// Setup: target price exactly equal to the quote
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 1500, model.JPY)
		svc := testutil.NewTestAlertService(t, db, source)

		alert := testutil.NewAlert().WithSymbol("7203.T").WithTargetPrice(1500).Build(t, db)

		// Execute
		fired, err := svc.EvaluateNow(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("EvaluateNow() returned unexpected error: %v", err)
		}
		if len(fired) != 1 {
			t.Fatalf("Expected 1 triggered alert, got %d", len(fired))
		}
		if fired[0].ID != alert.ID {
			t.Errorf("Expected alert %s, got %s", alert.ID, fired[0].ID)
		}
		if fired[0].CurrentPrice != 1500 {
			t.Errorf("Expected current price 1500, got %v", fired[0].CurrentPrice)
		}
	})

	t.Run("does not fire when the condition is not met", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 1499.99, model.JPY)
		svc := testutil.NewTestAlertService(t, db, source)

		testutil.NewAlert().WithSymbol("7203.T").WithTargetPrice(1500).Build(t, db)

		// Execute
		fired, err := svc.EvaluateNow(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("EvaluateNow() returned unexpected error: %v", err)
		}
		if len(fired) != 0 {
			t.Errorf("Expected no triggered alerts, got %d", len(fired))
		}
	})

	t.Run("fires only once across repeated passes", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 2000, model.JPY)
		svc := testutil.NewTestAlertService(t, db, source)

		testutil.NewAlert().WithSymbol("7203.T").WithTargetPrice(1500).Build(t, db)

		// Execute: first pass fires
		first, err := svc.EvaluateNow(context.Background())
		if err != nil {
			t.Fatalf("EvaluateNow() returned unexpected error: %v", err)
		}
		if len(first) != 1 {
			t.Fatalf("Expected 1 triggered alert on first pass, got %d", len(first))
		}

		// Execute: second pass must stay silent
		second, err := svc.EvaluateNow(context.Background())
		if err != nil {
			t.Fatalf("EvaluateNow() returned unexpected error: %v", err)
		}

		// Assert
		if len(second) != 0 {
			t.Errorf("Expected no triggered alerts on second pass, got %d", len(second))
		}

		// The stored alert carries the triggered status and timestamp
		alerts, err := svc.GetAlerts()
		if err != nil {
			t.Fatalf("GetAlerts() returned unexpected error: %v", err)
		}
		if len(alerts) != 1 || !alerts[0].Triggered() {
			t.Errorf("Expected the stored alert to be triggered, got %+v", alerts)
		}
		if alerts[0].TriggeredAt == nil {
			t.Error("Expected TriggeredAt to be recorded")
		}
	})

	t.Run("below alert fires at or under the target", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("HUM", 350, model.USD)
		svc := testutil.NewTestAlertService(t, db, source)

		testutil.NewAlert().
			WithSymbol("HUM").WithCondition(model.AlertBelow).WithTargetPrice(350).
			Build(t, db)

		// Execute
		fired, err := svc.EvaluateNow(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("EvaluateNow() returned unexpected error: %v", err)
		}
		if len(fired) != 1 {
			t.Errorf("Expected 1 triggered alert, got %d", len(fired))
		}
	})

	t.Run("skips evaluation when no active alerts exist", func(t *testing.T) {
		// Setup: a single already-triggered alert
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 2000, model.JPY)
		svc := testutil.NewTestAlertService(t, db, source)

		testutil.NewAlert().WithSymbol("7203.T").WithTargetPrice(1500).Triggered().Build(t, db)

		// Execute
		fired, err := svc.EvaluateNow(context.Background())

		// Assert: nothing fires and no quote is fetched
		if err != nil {
			t.Fatalf("EvaluateNow() returned unexpected error: %v", err)
		}
		if len(fired) != 0 {
			t.Errorf("Expected no triggered alerts, got %d", len(fired))
		}
		if source.CallCount != 0 {
			t.Errorf("Expected no quote fetches, got %d", source.CallCount)
		}
	})
}

// TestAlertService_ClearTriggered tests the bulk cleanup path.
//
// WHY: Clearing must remove exactly the triggered alerts and report the
// count, leaving active alerts in place.
func TestAlertService_ClearTriggered(t *testing.T) {
	t.Run("removes triggered alerts only", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAlertService(t, db, testutil.NewMockQuoteSource())

		active := testutil.NewAlert().WithSymbol("7203.T").Build(t, db)
		testutil.NewAlert().WithSymbol("6758.T").Triggered().Build(t, db)
		testutil.NewAlert().WithSymbol("HUM").Triggered().Build(t, db)

		// Execute
		deleted, err := svc.ClearTriggered()

		// Assert
		if err != nil {
			t.Fatalf("ClearTriggered() returned unexpected error: %v", err)
		}
		if deleted != 2 {
			t.Errorf("Expected 2 deleted, got %d", deleted)
		}

		remaining, err := svc.GetAlerts()
		if err != nil {
			t.Fatalf("GetAlerts() returned unexpected error: %v", err)
		}
		if len(remaining) != 1 || remaining[0].ID != active.ID {
			t.Errorf("Expected only the active alert to remain, got %+v", remaining)
		}
	})
}
