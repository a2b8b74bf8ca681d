// Package tax estimates capital gains tax over sell transactions and
// potential tax on unrealized gains, using a flat configurable rate.
//
// The output is an estimate for planning purposes, not an audit-grade tax
// calculation: cost basis is the simple recorded per-unit cost, with no
// tax-lot (FIFO/LIFO) accounting.
package tax

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// DefaultRate is the flat Japanese capital gains rate
// (15.315% income tax + 5% resident tax). It is a default, not a hardwired
// constant: every calculation takes the rate as a parameter.
const DefaultRate = 0.20315

// CapitalGainsTax computes realized gains, losses, and the resulting tax over
// the sell transactions in the given list. Non-sell transactions are ignored.
//
// Per transaction, gain = (sale price - cost basis) * quantity. A sell with
// no recorded cost basis uses the sale price as its basis, making it a
// zero-gain event rather than an error. Gains (including exactly zero) and
// losses accumulate separately; tax applies only to a positive net, and a
// negative net is reported as a loss carryover.
func CapitalGainsTax(transactions []model.Transaction, taxRate float64) model.RealizedGains {
	var totalGain, totalLoss float64
	details := []model.RealizedGainDetail{}

	for _, tx := range transactions {
		if tx.Type != model.TransactionSell {
			continue
		}

		costBasis := tx.CostBasis
		if costBasis == 0 {
			costBasis = tx.Price
		}
		gain := (tx.Price - costBasis) * tx.Quantity

		if gain >= 0 {
			totalGain += gain
		} else {
			totalLoss += math.Abs(gain)
		}
		details = append(details, model.RealizedGainDetail{
			Transaction: tx,
			Gain:        gain,
			IsGain:      gain >= 0,
		})
	}

	netGain := totalGain - totalLoss

	var taxAmount, lossCarryover float64
	if netGain > 0 {
		taxAmount = netGain * taxRate
	} else if netGain < 0 {
		lossCarryover = math.Abs(netGain)
	}

	return model.RealizedGains{
		TotalGain:     totalGain,
		TotalLoss:     totalLoss,
		NetGain:       netGain,
		TaxRate:       taxRate,
		TaxAmount:     taxAmount,
		LossCarryover: lossCarryover,
		Details:       details,
	}
}

// UnrealizedGains computes paper gains and losses over currently-held,
// valued positions.
//
// PotentialTax is deliberately computed on the gross gain total rather than
// net of losses: it answers "what would be owed if only the winners were
// sold today". This asymmetry versus the realized calculation is intentional.
func UnrealizedGains(valued []model.ValuedHolding, taxRate float64) model.UnrealizedGains {
	var totalGain, totalLoss float64
	details := []model.UnrealizedGainDetail{}

	for _, vh := range valued {
		gain := vh.CurrentValue - vh.CostBasis
		if gain >= 0 {
			totalGain += gain
		} else {
			totalLoss += math.Abs(gain)
		}

		var potential float64
		if gain > 0 {
			potential = gain * taxRate
		}
		gainPercent := vh.PnlPercent
		if math.IsNaN(gainPercent) || math.IsInf(gainPercent, 0) {
			gainPercent = 0
		}
		details = append(details, model.UnrealizedGainDetail{
			Symbol:       vh.Symbol,
			Name:         vh.Name,
			Gain:         gain,
			GainPercent:  gainPercent,
			PotentialTax: potential,
		})
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Gain > details[j].Gain
	})

	return model.UnrealizedGains{
		TotalUnrealizedGain: totalGain,
		TotalUnrealizedLoss: totalLoss,
		NetUnrealized:       totalGain - totalLoss,
		PotentialTax:        totalGain * taxRate,
		Details:             details,
	}
}

// AnnualSummary combines realized tax for a single year with the current
// unrealized position.
//
// Only the realized side is year-filtered: unrealized gains belong to
// still-open positions and have no transaction date, so they always reflect
// the present holdings. A zero year means the current year.
func AnnualSummary(transactions []model.Transaction, valued []model.ValuedHolding, year int, taxRate float64) model.TaxSummary {
	if year == 0 {
		year = time.Now().Year()
	}

	prefix := strconv.Itoa(year)
	yearTx := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if strings.HasPrefix(tx.Date, prefix) {
			yearTx = append(yearTx, tx)
		}
	}

	realized := CapitalGainsTax(yearTx, taxRate)
	unrealized := UnrealizedGains(valued, taxRate)

	effectiveRate := 0.0
	if realized.NetGain > 0 {
		effectiveRate = taxRate * 100
	}

	return model.TaxSummary{
		Year:              year,
		Realized:          realized,
		Unrealized:        unrealized,
		TotalTaxLiability: realized.TaxAmount,
		EffectiveTaxRate:  effectiveRate,
	}
}
