// Package valuation is the portfolio valuation engine: it combines holdings
// and live quotes into per-holding and aggregate value and P&L metrics.
//
// Every function here is a pure transformation over its inputs. Identical
// holdings and quotes always produce identical summaries, which the tests
// lean on heavily.
package valuation

import (
	"github.com/maouM-cmd/portfolio-dashboard/internal/currency"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// CalculateSummary values each holding against its quote and aggregates the
// results.
//
// A holding whose symbol is absent from the quote map is silently excluded
// from the summary: the dashboard stays usable under partial data
// availability, and the aggregate totals cover exactly the holdings that
// could be valued. Missing-quote means "value unknown, omit", not an error.
//
// PnlPercent is NaN when a holding's cost basis is zero, and TotalPnlPercent
// is NaN when the aggregate cost is zero. Callers must guard before display;
// the API layer serializes these as null.
func CalculateSummary(holdings []model.Holding, quotes map[string]model.Quote) model.PortfolioSummary {
	var totalValue, totalCost float64
	valued := []model.ValuedHolding{}

	for _, h := range holdings {
		quote, ok := quotes[h.Symbol]
		if !ok {
			continue
		}

		currentValue := h.Quantity * quote.Price
		costBasis := h.Quantity * h.PurchasePrice
		pnl := currentValue - costBasis

		totalValue += currentValue
		totalCost += costBasis

		valued = append(valued, model.ValuedHolding{
			Holding:          h,
			CurrentPrice:     quote.Price,
			CurrentValue:     currentValue,
			CostBasis:        costBasis,
			Pnl:              pnl,
			PnlPercent:       pnl / costBasis * 100,
			DayChange:        quote.Change,
			DayChangePercent: quote.ChangePercent,
			QuoteCurrency:    quote.Currency,
		})
	}

	return model.PortfolioSummary{
		TotalValue:      totalValue,
		TotalCost:       totalCost,
		TotalPnl:        totalValue - totalCost,
		TotalPnlPercent: (totalValue - totalCost) / totalCost * 100,
		Holdings:        valued,
	}
}

// ConvertToDisplayCurrency re-expresses every monetary field of a summary in
// the target currency, converting each holding from its own native currency
// and then re-summing the aggregates.
//
/// The ordering matters: holdings carry heterogeneous currencies, so
// converting the already-summed total once would be wrong whenever JPY and
// USD positions are mixed. Percentages are ratios and survive conversion
// unchanged.
func ConvertToDisplayCurrency(summary model.PortfolioSummary, target model.Currency, rate float64) (model.PortfolioSummary, error) {
	var totalValue, totalCost float64
	converted := make([]model.ValuedHolding, 0, len(summary.Holdings))

	for _, vh := range summary.Holdings {
		native := vh.Currency

		currentValue, err := currency.Convert(vh.CurrentValue, native, target, rate)
		if err != nil {
			return model.PortfolioSummary{}, err
		}
		costBasis, err := currency.Convert(vh.CostBasis, native, target, rate)
		if err != nil {
			return model.PortfolioSummary{}, err
		}
		currentPrice, err := currency.Convert(vh.CurrentPrice, native, target, rate)
		if err != nil {
			return model.PortfolioSummary{}, err
		}
		dayChange, err := currency.Convert(vh.DayChange, native, target, rate)
		if err != nil {
			return model.PortfolioSummary{}, err
		}

		vh.CurrentValue = currentValue
		vh.CostBasis = costBasis
		vh.CurrentPrice = currentPrice
		vh.DayChange = dayChange
		vh.Pnl = currentValue - costBasis
		// PnlPercent and DayChangePercent are scale-free, leave as computed.

		totalValue += currentValue
		totalCost += costBasis
		converted = append(converted, vh)
	}

	return model.PortfolioSummary{
		TotalValue:      totalValue,
		TotalCost:       totalCost,
		TotalPnl:        totalValue - totalCost,
		TotalPnlPercent: (totalValue - totalCost) / totalCost * 100,
		Holdings:        converted,
	}, nil
}
