package tax

import (
	"math"
	"testing"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

func sell(price, costBasis, quantity float64, date string) model.Transaction {
	return model.Transaction{
		Type:      model.TransactionSell,
		Symbol:    "AAPL",
		Quantity:  quantity,
		Price:     price,
		CostBasis: costBasis,
		Date:      date,
	}
}

func buy(price, quantity float64, date string) model.Transaction {
	return model.Transaction{
		Type:     model.TransactionBuy,
		Symbol:   "AAPL",
		Quantity: quantity,
		Price:    price,
		Date:     date,
	}
}

// TestCapitalGainsTax tests realized gain accumulation and tax application.
//
// WHY: Gains and losses accumulate separately, tax applies only to a positive
// net, and a missing cost basis must degrade to a zero-gain event. Getting
// any of these wrong misstates the user's tax liability.
func TestCapitalGainsTax(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		// sell {price:200, costBasis:150, quantity:10} -> gain 500,
		// tax at the default rate ~= 101.575.
		got := CapitalGainsTax([]model.Transaction{sell(200, 150, 10, "2026-03-01")}, DefaultRate)

		if got.TotalGain != 500 {
			t.Errorf("TotalGain = %v, want 500", got.TotalGain)
		}
		if got.NetGain != 500 {
			t.Errorf("NetGain = %v, want 500", got.NetGain)
		}
		if math.Abs(got.TaxAmount-101.575) > 1e-9 {
			t.Errorf("TaxAmount = %v, want 101.575", got.TaxAmount)
		}
		if got.LossCarryover != 0 {
			t.Errorf("LossCarryover = %v, want 0", got.LossCarryover)
		}
	})

	t.Run("only buys yield all zeros", func(t *testing.T) {
		got := CapitalGainsTax([]model.Transaction{
			buy(100, 10, "2026-01-01"),
			buy(200, 5, "2026-02-01"),
		}, DefaultRate)

		if got.TotalGain != 0 || got.TotalLoss != 0 || got.NetGain != 0 || got.TaxAmount != 0 {
			t.Errorf("buys-only result not zeroed: %+v", got)
		}
		if len(got.Details) != 0 {
			t.Errorf("expected no details for buys-only, got %d", len(got.Details))
		}
	})

	t.Run("missing cost basis is a zero-gain event", func(t *testing.T) {
		got := CapitalGainsTax([]model.Transaction{sell(200, 0, 10, "2026-03-01")}, DefaultRate)

		if got.TotalGain != 0 || got.TotalLoss != 0 || got.TaxAmount != 0 {
			t.Errorf("missing basis should be zero-gain, got %+v", got)
		}
		if len(got.Details) != 1 || !got.Details[0].IsGain {
			t.Errorf("zero gain should count on the gain side, got %+v", got.Details)
		}
	})

	t.Run("losses accumulate separately and produce carryover", func(t *testing.T) {
		got := CapitalGainsTax([]model.Transaction{
			sell(200, 150, 10, "2026-03-01"), // +500
			sell(100, 180, 10, "2026-04-01"), // -800
		}, DefaultRate)

		if got.TotalGain != 500 {
			t.Errorf("TotalGain = %v, want 500", got.TotalGain)
		}
		if got.TotalLoss != 800 {
			t.Errorf("TotalLoss = %v, want 800", got.TotalLoss)
		}
		if got.NetGain != -300 {
			t.Errorf("NetGain = %v, want -300", got.NetGain)
		}
		if got.TaxAmount != 0 {
			t.Errorf("TaxAmount = %v, want 0 for net loss", got.TaxAmount)
		}
		if got.LossCarryover != 300 {
			t.Errorf("LossCarryover = %v, want 300", got.LossCarryover)
		}
	})

	t.Run("dividend transactions are ignored", func(t *testing.T) {
		got := CapitalGainsTax([]model.Transaction{
			{Type: model.TransactionDividend, Symbol: "AAPL", Quantity: 10, Price: 5, Date: "2026-03-01"},
		}, DefaultRate)

		if len(got.Details) != 0 {
			t.Errorf("dividends must not appear in realized details, got %d", len(got.Details))
		}
	})
}

// TestUnrealizedGains tests paper gain accumulation and the gross-gain
// potential tax.
//
// WHY: PotentialTax is intentionally computed on gross gains (what you'd owe
// selling only the winners), not net of losses. A symmetric implementation
// would look more consistent and be wrong.
func TestUnrealizedGains(t *testing.T) {
	holdings := []model.ValuedHolding{
		{
			Holding:      model.Holding{Symbol: "AAPL", Name: "Apple"},
			CurrentValue: 1500, CostBasis: 1000, Pnl: 500, PnlPercent: 50,
		},
		{
			Holding:      model.Holding{Symbol: "XOM", Name: "Exxon"},
			CurrentValue: 800, CostBasis: 1000, Pnl: -200, PnlPercent: -20,
		},
	}

	got := UnrealizedGains(holdings, DefaultRate)

	if got.TotalUnrealizedGain != 500 {
		t.Errorf("TotalUnrealizedGain = %v, want 500", got.TotalUnrealizedGain)
	}
	if got.TotalUnrealizedLoss != 200 {
		t.Errorf("TotalUnrealizedLoss = %v, want 200", got.TotalUnrealizedLoss)
	}
	if got.NetUnrealized != 300 {
		t.Errorf("NetUnrealized = %v, want 300", got.NetUnrealized)
	}
	// Gross gain, not net: 500 * rate, never 300 * rate.
	if math.Abs(got.PotentialTax-500*DefaultRate) > 1e-9 {
		t.Errorf("PotentialTax = %v, want %v", got.PotentialTax, 500*DefaultRate)
	}

	if len(got.Details) != 2 || got.Details[0].Symbol != "AAPL" {
		t.Errorf("details should sort by gain descending, got %+v", got.Details)
	}
	if got.Details[1].PotentialTax != 0 {
		t.Errorf("losing position must carry no potential tax, got %v", got.Details[1].PotentialTax)
	}
}

// TestAnnualSummary tests the year filter asymmetry.
//
// WHY: Realized figures are filtered to the requested year's transactions;
// unrealized figures always cover current holdings because open positions
// have no transaction date. The asymmetry is inherent to the concept.
func TestAnnualSummary(t *testing.T) {
	transactions := []model.Transaction{
		sell(200, 150, 10, "2025-06-15"), // +500, prior year
		sell(300, 200, 10, "2026-02-10"), // +1000, target year
	}
	holdings := []model.ValuedHolding{
		{
			Holding:      model.Holding{Symbol: "AAPL", Name: "Apple"},
			CurrentValue: 1200, CostBasis: 1000, Pnl: 200, PnlPercent: 20,
		},
	}

	t.Run("realized side is year-filtered", func(t *testing.T) {
		got := AnnualSummary(transactions, holdings, 2026, DefaultRate)

		if got.Year != 2026 {
			t.Errorf("Year = %d, want 2026", got.Year)
		}
		if got.Realized.TotalGain != 1000 {
			t.Errorf("Realized.TotalGain = %v, want 1000 (2026 only)", got.Realized.TotalGain)
		}
		if got.TotalTaxLiability != got.Realized.TaxAmount {
			t.Errorf("TotalTaxLiability = %v, want %v", got.TotalTaxLiability, got.Realized.TaxAmount)
		}
		if got.EffectiveTaxRate != DefaultRate*100 {
			t.Errorf("EffectiveTaxRate = %v, want %v", got.EffectiveTaxRate, DefaultRate*100)
		}
	})

	t.Run("unrealized side ignores the year", func(t *testing.T) {
		for _, year := range []int{2024, 2025, 2026} {
			got := AnnualSummary(transactions, holdings, year, DefaultRate)
			if got.Unrealized.TotalUnrealizedGain != 200 {
				t.Errorf("year %d: unrealized gain = %v, want 200", year, got.Unrealized.TotalUnrealizedGain)
			}
		}
	})

	t.Run("year with no sells has zero effective rate", func(t *testing.T) {
		got := AnnualSummary(transactions, holdings, 2024, DefaultRate)

		if got.Realized.TaxAmount != 0 {
			t.Errorf("Realized.TaxAmount = %v, want 0", got.Realized.TaxAmount)
		}
		if got.EffectiveTaxRate != 0 {
			t.Errorf("EffectiveTaxRate = %v, want 0", got.EffectiveTaxRate)
		}
	})
}
