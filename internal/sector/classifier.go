// Package sector classifies holdings into industry sectors and analyzes the
// resulting allocation: grouping, target-versus-current rebalancing deltas,
// and rule-based portfolio diagnostics.
package sector

import (
	"math"
	"sort"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// Classifier maps symbols to sectors using an injected lookup table.
// The table is copied at construction and never mutated afterwards, so a
// Classifier is safe for concurrent readers.
type Classifier struct {
	bySymbol map[string]string
}

// NewClassifier creates a Classifier over the given symbol-to-sector table.
// A nil table yields a classifier that maps everything to Other.
func NewClassifier(table map[string]string) *Classifier {
	bySymbol := make(map[string]string, len(table))
	for symbol, s := range table {
		bySymbol[symbol] = s
	}
	return &Classifier{bySymbol: bySymbol}
}

// Classify returns the sector for a symbol. Unknown symbols classify to the
// Other bucket; classification never fails.
func (c *Classifier) Classify(symbol string) string {
	if s, ok := c.bySymbol[symbol]; ok {
		return s
	}
	return Other
}

// GroupBySector partitions valued holdings by sector and accumulates each
// group's total market value. Groups come back sorted descending by total
// value; the sort is stable, so groups with equal totals keep the relative
// order in which their first holdings appeared.
func (c *Classifier) GroupBySector(valued []model.ValuedHolding) []model.SectorGroup {
	index := map[string]int{}
	groups := []model.SectorGroup{}

	for _, vh := range valued {
		name := c.Classify(vh.Symbol)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, model.SectorGroup{Sector: name})
		}
		groups[i].Holdings = append(groups[i].Holdings, vh)
		groups[i].TotalValue += vh.CurrentValue
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalValue > groups[j].TotalValue
	})
	return groups
}

// Rebalance compares the current sector allocation against a target
// allocation (sector name to percent) and produces one suggestion per sector.
//
// Sectors named in the target map get diff = target% - current%; a positive
// diff suggests buying more, negative suggests selling, zero is on target.
// Sectors the user holds but left out of the target map are appended with a
// zero target and the no-target-set action. Suggestions come back sorted by
// absolute misalignment, largest first.
//
// A portfolio with zero total value yields no suggestions at all, since
// allocation percentages are undefined.
func (c *Classifier) Rebalance(valued []model.ValuedHolding, targets map[string]float64) []model.RebalanceSuggestion {
	var totalValue float64
	for _, vh := range valued {
		totalValue += vh.CurrentValue
	}
	if totalValue == 0 {
		return []model.RebalanceSuggestion{}
	}

	groups := c.GroupBySector(valued)
	valueBySector := make(map[string]float64, len(groups))
	for _, g := range groups {
		valueBySector[g.Sector] = g.TotalValue
	}

	// Iterate targets in sorted-name order so output is deterministic.
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	suggestions := make([]model.RebalanceSuggestion, 0, len(names))
	for _, name := range names {
		targetPercent := targets[name]
		currentValue := valueBySector[name]
		currentPercent := currentValue / totalValue * 100
		targetValue := totalValue * targetPercent / 100
		diffValue := targetValue - currentValue

		action := model.ActionOnTarget
		switch {
		case diffValue > 0:
			action = model.ActionBuyMore
		case diffValue < 0:
			action = model.ActionConsiderSelling
		}

		suggestions = append(suggestions, model.RebalanceSuggestion{
			Sector:         name,
			CurrentPercent: currentPercent,
			TargetPercent:  targetPercent,
			DiffPercent:    targetPercent - currentPercent,
			DiffValue:      diffValue,
			Action:         action,
		})
	}

	// Held sectors absent from the target map.
	for _, g := range groups {
		if _, ok := targets[g.Sector]; ok {
			continue
		}
		currentPercent := g.TotalValue / totalValue * 100
		suggestions = append(suggestions, model.RebalanceSuggestion{
			Sector:         g.Sector,
			CurrentPercent: currentPercent,
			TargetPercent:  0,
			DiffPercent:    -currentPercent,
			DiffValue:      -g.TotalValue,
			Action:         model.ActionNoTarget,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return math.Abs(suggestions[i].DiffPercent) > math.Abs(suggestions[j].DiffPercent)
	})
	return suggestions
}
