package service_test

import (
	"context"
	"testing"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/testutil"
)

// TestGoalService_Progress tests goal evaluation against the portfolio.
//
// WHY: Progress divides by the target amount; a zero target must yield a nil
// percent rather than Inf, and the remaining amount must clamp at zero once
// a goal is exceeded.
func TestGoalService_Progress(t *testing.T) {
	t.Run("computes percent and remaining", func(t *testing.T) {
		// Setup: portfolio worth 150000
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 1500, model.JPY)
		svc := testutil.NewTestGoalService(t, db, source)

		testutil.NewHolding().WithSymbol("7203.T").WithQuantity(100).Build(t, db)
		testutil.CreateGoal(t, db, "First milestone", 300000)

		// Execute
		progress, err := svc.Progress(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("Progress() returned unexpected error: %v", err)
		}
		if len(progress) != 1 {
			t.Fatalf("Expected 1 goal, got %d", len(progress))
		}

		p := progress[0]
		if p.CurrentValue != 150000 {
			t.Errorf("Expected current value 150000, got %v", p.CurrentValue)
		}
		if p.Remaining != 150000 {
			t.Errorf("Expected remaining 150000, got %v", p.Remaining)
		}
		if p.ProgressPercent == nil || *p.ProgressPercent != 50 {
			t.Errorf("Expected progress 50%%, got %v", p.ProgressPercent)
		}
		if p.Achieved {
			t.Error("Expected goal not achieved")
		}
	})

	t.Run("clamps remaining at zero when exceeded", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 1500, model.JPY)
		svc := testutil.NewTestGoalService(t, db, source)

		testutil.NewHolding().WithSymbol("7203.T").WithQuantity(100).Build(t, db)
		testutil.CreateGoal(t, db, "Modest goal", 100000)

		// Execute
		progress, err := svc.Progress(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("Progress() returned unexpected error: %v", err)
		}
		p := progress[0]
		if p.Remaining != 0 {
			t.Errorf("Expected remaining 0, got %v", p.Remaining)
		}
		if !p.Achieved {
			t.Error("Expected goal achieved")
		}
	})

	t.Run("nil percent for zero target amount", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestGoalService(t, db, testutil.NewMockQuoteSource())

		testutil.CreateGoal(t, db, "Placeholder", 0)

		// Execute
		progress, err := svc.Progress(context.Background())

		// Assert
		if err != nil {
			t.Fatalf("Progress() returned unexpected error: %v", err)
		}
		if progress[0].ProgressPercent != nil {
			t.Errorf("Expected nil percent, got %v", *progress[0].ProgressPercent)
		}
	})
}
