// Package alerts evaluates user-defined price alerts against live quotes.
//
// An alert is a tiny state machine: active until its condition is met, then
// triggered permanently. Evaluate is the only place that performs the
// transition, so the single-fire guarantee lives here and nowhere else.
package alerts

import (
	"time"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// Evaluate checks every active alert against the quote map and returns the
// updated alert set plus the alerts that fired on this pass.
//
// Rules:
//   - already-triggered alerts are skipped and never re-fire
//   - an alert whose symbol has no quote is left unchanged
//   - "above" fires when price >= target, "below" when price <= target
//     (boundaries inclusive in both directions)
//
// Each transition appears in the newly-triggered result exactly once, so a
// caller can notify without deduplicating across evaluation cycles. The
// input slice is not mutated.
func Evaluate(alerts []model.Alert, quotes map[string]model.Quote, now time.Time) ([]model.Alert, []model.TriggeredAlert) {
	updated := make([]model.Alert, len(alerts))
	triggered := []model.TriggeredAlert{}

	for i, alert := range alerts {
		updated[i] = alert

		if alert.Triggered() {
			continue
		}
		quote, ok := quotes[alert.Symbol]
		if !ok {
			continue
		}

		if !conditionMet(alert, quote.Price) {
			continue
		}

		at := now
		updated[i].Status = model.AlertStatusTriggered
		updated[i].TriggeredAt = &at
		triggered = append(triggered, model.TriggeredAlert{
			Alert:        updated[i],
			CurrentPrice: quote.Price,
		})
	}

	return updated, triggered
}

func conditionMet(alert model.Alert, price float64) bool {
	switch alert.Condition {
	case model.AlertAbove:
		return price >= alert.TargetPrice
	case model.AlertBelow:
		return price <= alert.TargetPrice
	}
	return false
}

// ClearTriggered removes all triggered alerts from the set, leaving active
// alerts untouched.
func ClearTriggered(alerts []model.Alert) []model.Alert {
	active := make([]model.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if !alert.Triggered() {
			active = append(active, alert)
		}
	}
	return active
}
