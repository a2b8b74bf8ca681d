package sector

import (
	"strings"
	"testing"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

func valuedPnl(symbol string, currentValue, pnl, pnlPercent float64) model.ValuedHolding {
	return model.ValuedHolding{
		Holding:      model.Holding{ID: symbol, Symbol: symbol, Name: symbol},
		CurrentValue: currentValue,
		Pnl:          pnl,
		PnlPercent:   pnlPercent,
	}
}

func analyzeFixture(t *testing.T, holdings []model.ValuedHolding) model.PortfolioAnalysis {
	t.Helper()
	c := NewClassifier(DefaultSectorMap())
	var total float64
	for _, vh := range holdings {
		total += vh.CurrentValue
	}
	return Analyze(holdings, c.GroupBySector(holdings), total, DefaultThresholds())
}

func containsSubstring(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// TestAnalyze tests the rule-based portfolio diagnostics.
//
// WHY: The diagnostics are a fixed rule table with exact cutoffs (40%/25%
// concentration, 3 sectors, 3/15 holdings, -20%/+50% extremes). Each rule is
// exercised at and around its boundary so threshold drift shows up in review.
func TestAnalyze(t *testing.T) {
	t.Run("empty portfolio prompts to add holdings", func(t *testing.T) {
		got := analyzeFixture(t, nil)

		if len(got.Warnings) != 0 {
			t.Errorf("expected no warnings for empty portfolio, got %v", got.Warnings)
		}
		if len(got.Insights) != 1 || len(got.Recommendations) != 1 {
			t.Errorf("expected single insight and recommendation, got %+v", got)
		}
	})

	t.Run("concentration above 40 percent warns", func(t *testing.T) {
		got := analyzeFixture(t, []model.ValuedHolding{
			valuedPnl("AAPL", 41, 0, 0),
			valuedPnl("JPM", 30, 0, 0),
			valuedPnl("XOM", 29, 0, 0),
		})

		if !containsSubstring(got.Warnings, "Concentration risk") {
			t.Errorf("expected concentration warning, got %v", got.Warnings)
		}
		if !containsSubstring(got.Recommendations, "below 30%") {
			t.Errorf("expected rebalance recommendation, got %v", got.Recommendations)
		}
	})

	t.Run("concentration at exactly 40 percent does not warn", func(t *testing.T) {
		got := analyzeFixture(t, []model.ValuedHolding{
			valuedPnl("AAPL", 40, 0, 0),
			valuedPnl("JPM", 30, 0, 0),
			valuedPnl("XOM", 30, 0, 0),
		})

		if containsSubstring(got.Warnings, "Concentration risk") {
			t.Errorf("40%% exactly must not warn, got %v", got.Warnings)
		}
		if !containsSubstring(got.Insights, "somewhat concentrated") {
			t.Errorf("expected somewhat-concentrated insight, got %v", got.Insights)
		}
	})

	t.Run("concentration at or below 25 percent is a positive insight", func(t *testing.T) {
		got := analyzeFixture(t, []model.ValuedHolding{
			valuedPnl("AAPL", 25, 0, 0),
			valuedPnl("JPM", 25, 0, 0),
			valuedPnl("XOM", 25, 0, 0),
			valuedPnl("JNJ", 25, 0, 0),
		})

		if !containsSubstring(got.Insights, "reasonably diversified") {
			t.Errorf("expected diversified insight, got %v", got.Insights)
		}
	})

	t.Run("single sector warns", func(t *testing.T) {
		got := analyzeFixture(t, []model.ValuedHolding{
			valuedPnl("AAPL", 20, 0, 0),
			valuedPnl("MSFT", 20, 0, 0),
			valuedPnl("GOOGL", 20, 0, 0),
			valuedPnl("NVDA", 20, 0, 0),
			valuedPnl("META", 20, 0, 0),
		})

		if !containsSubstring(got.Warnings, "concentrated in the Technology sector") {
			t.Errorf("expected single-sector warning, got %v", got.Warnings)
		}
	})

	t.Run("two sectors nudge toward three", func(t *testing.T) {
		got := analyzeFixture(t, []model.ValuedHolding{
			valuedPnl("AAPL", 25, 0, 0),
			valuedPnl("MSFT", 25, 0, 0),
			valuedPnl("JPM", 25, 0, 0),
			valuedPnl("GS", 25, 0, 0),
		})

		if !containsSubstring(got.Insights, "Invested in 2 sectors") {
			t.Errorf("expected two-sector nudge, got %v", got.Insights)
		}
	})

	t.Run("three or more sectors is a positive insight", func(t *testing.T) {
		got := analyzeFixture(t, []model.ValuedHolding{
			valuedPnl("AAPL", 25, 0, 0),
			valuedPnl("JPM", 25, 0, 0),
			valuedPnl("XOM", 25, 0, 0),
			valuedPnl("JNJ", 25, 0, 0),
		})

		if !containsSubstring(got.Insights, "diversified across 4 sectors") {
			t.Errorf("expected multi-sector insight, got %v", got.Insights)
		}
	})

	t.Run("fewer than three holdings recommends diversifying", func(t *testing.T) {
		got := analyzeFixture(t, []model.ValuedHolding{
			valuedPnl("AAPL", 50, 0, 0),
			valuedPnl("JPM", 50, 0, 0),
		})

		if !containsSubstring(got.Recommendations, "5-10 positions") {
			t.Errorf("expected diversification recommendation, got %v", got.Recommendations)
		}
	})

	t.Run("more than fifteen holdings recommends consolidating", func(t *testing.T) {
		holdings := make([]model.ValuedHolding, 16)
		symbols := []string{"AAPL", "MSFT", "GOOGL", "META", "NVDA", "AMD", "INTC", "CRM",
			"JPM", "V", "MA", "BAC", "XOM", "CVX", "JNJ", "UNH"}
		for i, s := range symbols {
			holdings[i] = valuedPnl(s, 10, 0, 0)
		}

		got := analyzeFixture(t, holdings)

		if !containsSubstring(got.Recommendations, "around 10 positions") {
			t.Errorf("expected consolidation recommendation, got %v", got.Recommendations)
		}
	})

	t.Run("loser beyond minus 20 percent suggests stop-loss", func(t *testing.T) {
		got := analyzeFixture(t, []model.ValuedHolding{
			valuedPnl("AAPL", 30, 10, 12),
			valuedPnl("JPM", 30, -5, -10),
			valuedPnl("XOM", 30, -15, -20.5),
		})

		if !containsSubstring(got.Warnings, "stop-loss") {
			t.Errorf("expected stop-loss warning, got %v", got.Warnings)
		}
		if !containsSubstring(got.Warnings, "XOM") {
			t.Errorf("warning should name the worst performer, got %v", got.Warnings)
		}
	})

	t.Run("loser at exactly minus 20 percent does not warn", func(t *testing.T) {
		got := analyzeFixture(t, []model.ValuedHolding{
			valuedPnl("AAPL", 30, 10, 12),
			valuedPnl("JPM", 30, -5, -20),
			valuedPnl("XOM", 30, 5, 8),
		})

		if containsSubstring(got.Warnings, "stop-loss") {
			t.Errorf("-20%% exactly must not warn, got %v", got.Warnings)
		}
	})

	t.Run("winner above 50 percent suggests profit taking", func(t *testing.T) {
		got := analyzeFixture(t, []model.ValuedHolding{
			valuedPnl("AAPL", 30, 20, 50.5),
			valuedPnl("JPM", 30, 5, 10),
			valuedPnl("XOM", 30, 1, 2),
		})

		if !containsSubstring(got.Insights, "taking some profit") {
			t.Errorf("expected profit-taking insight, got %v", got.Insights)
		}
	})

	t.Run("healthy portfolio gets the generic recommendation", func(t *testing.T) {
		got := analyzeFixture(t, []model.ValuedHolding{
			valuedPnl("AAPL", 25, 2, 5),
			valuedPnl("JPM", 25, 2, 5),
			valuedPnl("XOM", 25, 2, 5),
			valuedPnl("JNJ", 25, 2, 5),
		})

		if !containsSubstring(got.Recommendations, "rebalancing periodically") {
			t.Errorf("expected generic recommendation, got %v", got.Recommendations)
		}
		if len(got.Recommendations) != 1 {
			t.Errorf("generic recommendation must only appear alone, got %v", got.Recommendations)
		}
	})
}
