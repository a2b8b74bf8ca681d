// Package currency converts monetary amounts between the two supported
// currencies (JPY and USD) and formats them for display.
//
// The converter carries no exchange-rate state: the rate is always an
// argument, so callers decide where it comes from and how fresh it is.
// Caching belongs to the quote adapter.
package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// NotAvailable is the display sentinel for undefined monetary values.
const NotAvailable = "N/A"

// Convert converts an amount between two currencies given the USD/JPY rate.
//
// Conversion rules:
//   - from == to: identity, rate ignored
//   - USD -> JPY: amount * rate
//   - JPY -> USD: amount / rate
//
// Any other pair returns apperrors.ErrUnsupportedCurrencyPair. The original
// behavior of silently returning the unconverted amount for unrecognized
// pairs hid mixed-currency bugs, so unsupported pairs fail loudly here.
func Convert(amount float64, from, to model.Currency, rate float64) (float64, error) {
	if from == to {
		return amount, nil
	}
	if from == model.USD && to == model.JPY {
		return amount * rate, nil
	}
	if from == model.JPY && to == model.USD {
		return amount / rate, nil
	}
	return 0, fmt.Errorf("%w: %s -> %s", apperrors.ErrUnsupportedCurrencyPair, from, to)
}

// Format renders a monetary value for display.
// JPY renders as a rounded integer with comma grouping and a yen prefix;
// USD renders with exactly two decimals, grouped, and a dollar prefix.
// NaN and infinite values render as the NotAvailable sentinel instead of
// producing garbage output.
func Format(value float64, cur model.Currency) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NotAvailable
	}

	if cur == model.JPY {
		return "¥" + groupDigits(strconv.FormatFloat(math.Round(value), 'f', 0, 64))
	}
	return "$" + groupDigits(strconv.FormatFloat(value, 'f', 2, 64))
}

// groupDigits inserts comma thousand separators into a plain decimal string.
// The input may carry a leading minus sign and a fractional part.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteString(fracPart)
	return b.String()
}
