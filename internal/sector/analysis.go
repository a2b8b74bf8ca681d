package sector

import (
	"fmt"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// AnalysisThresholds are the cutoffs the portfolio diagnostics rules use.
// They are named here rather than inlined so boundary tests can target them
// and so a caller can tighten or loosen the rules without touching Analyze.
type AnalysisThresholds struct {
	// ConcentrationWarn is the single-holding share of total value, in
	// percent, above which a concentration warning fires.
	ConcentrationWarn float64
	// ConcentrationNote is the share above which a softer "somewhat
	// concentrated" observation fires instead.
	ConcentrationNote float64
	// RebalanceTarget is the recommended maximum single-holding share quoted
	// in the concentration warning's recommendation.
	RebalanceTarget float64
	// MinSectors is the sector count below which diversification is nudged.
	MinSectors int
	// MinHoldings and MaxHoldings bound the recommended position count.
	MinHoldings int
	MaxHoldings int
	// StopLossPercent is the loss (negative percent) beyond which the worst
	// performer draws a stop-loss warning.
	StopLossPercent float64
	// TakeProfitPercent is the gain beyond which the best performer draws a
	// profit-taking suggestion.
	TakeProfitPercent float64
}

// DefaultThresholds are the stock rule cutoffs.
func DefaultThresholds() AnalysisThresholds {
	return AnalysisThresholds{
		ConcentrationWarn: 40,
		ConcentrationNote: 25,
		RebalanceTarget:   30,
		MinSectors:        3,
		MinHoldings:       3,
		MaxHoldings:       15,
		StopLossPercent:   -20,
		TakeProfitPercent: 50,
	}
}

// Analyze runs the rule-based portfolio diagnostics: concentration, sector
// diversity, position count, and extreme winners and losers. It is a fixed
// rule table, deterministic for a given input, not a learned model.
func Analyze(valued []model.ValuedHolding, groups []model.SectorGroup, totalValue float64, t AnalysisThresholds) model.PortfolioAnalysis {
	if len(valued) == 0 {
		return model.PortfolioAnalysis{
			Insights:        []string{"No holdings recorded."},
			Warnings:        []string{},
			Recommendations: []string{"Add your first holding to get started."},
		}
	}

	insights := []string{}
	warnings := []string{}
	recommendations := []string{}

	// Concentration: share of the single largest position.
	max := valued[0]
	for _, vh := range valued[1:] {
		if vh.CurrentValue > max.CurrentValue {
			max = vh
		}
	}
	maxPercent := 0.0
	if totalValue > 0 {
		maxPercent = max.CurrentValue / totalValue * 100
	}

	switch {
	case maxPercent > t.ConcentrationWarn:
		warnings = append(warnings, fmt.Sprintf(
			"%s makes up %.1f%% of the portfolio. Concentration risk is high.", max.Name, maxPercent))
		recommendations = append(recommendations, fmt.Sprintf(
			"Consider rebalancing %s to below %.0f%% of the portfolio.", max.Name, t.RebalanceTarget))
	case maxPercent > t.ConcentrationNote:
		insights = append(insights, fmt.Sprintf(
			"%s is the largest position (%.1f%%). The portfolio is somewhat concentrated.", max.Name, maxPercent))
	default:
		insights = append(insights, fmt.Sprintf(
			"Holdings are reasonably diversified (largest position %.1f%%).", maxPercent))
	}

	// Sector diversity.
	switch {
	case len(groups) == 1:
		warnings = append(warnings, fmt.Sprintf(
			"All holdings are concentrated in the %s sector. Consider diversifying across sectors.", groups[0].Sector))
	case len(groups) < t.MinSectors:
		insights = append(insights, fmt.Sprintf(
			"Invested in %d sectors. Spreading across %d or more sectors is recommended.", len(groups), t.MinSectors))
	default:
		insights = append(insights, fmt.Sprintf(
			"Investments are diversified across %d sectors.", len(groups)))
	}

	// Position count.
	if len(valued) < t.MinHoldings {
		recommendations = append(recommendations, fmt.Sprintf(
			"Only %d holdings recorded. Consider diversifying into 5-10 positions.", len(valued)))
	} else if len(valued) > t.MaxHoldings {
		recommendations = append(recommendations, fmt.Sprintf(
			"%d holdings is a lot to manage. Consolidating to around 10 positions can help.", len(valued)))
	}

	// Extreme performers.
	if loser, ok := biggestLoser(valued); ok && loser.PnlPercent < t.StopLossPercent {
		warnings = append(warnings, fmt.Sprintf(
			"%s is down %.1f%%. Consider setting a stop-loss level.", loser.Name, loser.PnlPercent))
	}
	if winner, ok := biggestWinner(valued); ok && winner.PnlPercent > t.TakeProfitPercent {
		insights = append(insights, fmt.Sprintf(
			"%s is up %.1f%%. It may be worth considering taking some profit.", winner.Name, winner.PnlPercent))
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"The portfolio looks healthy. Keep rebalancing periodically.")
	}

	return model.PortfolioAnalysis{
		Insights:        insights,
		Warnings:        warnings,
		Recommendations: recommendations,
	}
}

// biggestLoser returns the losing holding with the lowest P&L percent.
// Reports false when no holding has a negative P&L.
func biggestLoser(valued []model.ValuedHolding) (model.ValuedHolding, bool) {
	var worst model.ValuedHolding
	found := false
	for _, vh := range valued {
		if vh.Pnl >= 0 {
			continue
		}
		if !found || vh.PnlPercent < worst.PnlPercent {
			worst = vh
			found = true
		}
	}
	return worst, found
}

// biggestWinner returns the winning holding with the highest P&L percent.
// Reports false when no holding has a positive P&L.
func biggestWinner(valued []model.ValuedHolding) (model.ValuedHolding, bool) {
	var best model.ValuedHolding
	found := false
	for _, vh := range valued {
		if vh.Pnl <= 0 {
			continue
		}
		if !found || vh.PnlPercent > best.PnlPercent {
			best = vh
			found = true
		}
	}
	return best, found
}
