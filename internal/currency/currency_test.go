package currency

import (
	"errors"
	"math"
	"testing"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// TestConvert tests currency conversion between the supported pairs.
//
// WHY: Every monetary aggregate in the app flows through Convert when the
// display currency differs from a holding's native currency. A silent
// direction mix-up would corrupt every total on the dashboard.
func TestConvert(t *testing.T) {
	const rate = 150.0

	t.Run("identity when currencies match", func(t *testing.T) {
		got, err := Convert(1234.56, model.JPY, model.JPY, rate)
		if err != nil {
			t.Fatalf("Convert() returned unexpected error: %v", err)
		}
		if got != 1234.56 {
			t.Errorf("Convert(JPY->JPY) = %v, want 1234.56", got)
		}
	})

	t.Run("USD to JPY multiplies by rate", func(t *testing.T) {
		got, err := Convert(100, model.USD, model.JPY, rate)
		if err != nil {
			t.Fatalf("Convert() returned unexpected error: %v", err)
		}
		if got != 15000 {
			t.Errorf("Convert(100 USD->JPY, rate 150) = %v, want 15000", got)
		}
	})

	t.Run("JPY to USD divides by rate", func(t *testing.T) {
		got, err := Convert(15000, model.JPY, model.USD, rate)
		if err != nil {
			t.Fatalf("Convert() returned unexpected error: %v", err)
		}
		if got != 100 {
			t.Errorf("Convert(15000 JPY->USD, rate 150) = %v, want 100", got)
		}
	})

	t.Run("round trip returns original within tolerance", func(t *testing.T) {
		amount := 1234.5678
		jpy, err := Convert(amount, model.USD, model.JPY, rate)
		if err != nil {
			t.Fatalf("Convert() returned unexpected error: %v", err)
		}
		back, err := Convert(jpy, model.JPY, model.USD, rate)
		if err != nil {
			t.Fatalf("Convert() returned unexpected error: %v", err)
		}
		if math.Abs(back-amount) > 1e-9 {
			t.Errorf("round trip = %v, want %v", back, amount)
		}
	})

	t.Run("unsupported pair fails loudly", func(t *testing.T) {
		_, err := Convert(100, model.Currency("EUR"), model.JPY, rate)
		if !errors.Is(err, apperrors.ErrUnsupportedCurrencyPair) {
			t.Errorf("Convert(EUR->JPY) error = %v, want ErrUnsupportedCurrencyPair", err)
		}

		_, err = Convert(100, model.USD, model.Currency("GBP"), rate)
		if !errors.Is(err, apperrors.ErrUnsupportedCurrencyPair) {
			t.Errorf("Convert(USD->GBP) error = %v, want ErrUnsupportedCurrencyPair", err)
		}
	})

	t.Run("unknown identical currency is still identity", func(t *testing.T) {
		got, err := Convert(42, model.Currency("EUR"), model.Currency("EUR"), rate)
		if err != nil {
			t.Fatalf("Convert() returned unexpected error: %v", err)
		}
		if got != 42 {
			t.Errorf("Convert(EUR->EUR) = %v, want 42", got)
		}
	})
}

// TestFormat tests display formatting for both currencies and the
// not-available sentinel.
//
// WHY: Formatting rules differ per currency (JPY is a whole-yen integer, USD
// keeps cents) and undefined ratios must render as "N/A" rather than
// crashing or printing NaN.
func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		currency model.Currency
		want     string
	}{
		{"JPY rounds to integer with grouping", 1234567.49, model.JPY, "¥1,234,567"},
		{"JPY rounds half up", 99.5, model.JPY, "¥100"},
		{"JPY small value", 42, model.JPY, "¥42"},
		{"USD keeps two decimals with grouping", 1234567.891, model.USD, "$1,234,567.89"},
		{"USD pads to two decimals", 5, model.USD, "$5.00"},
		{"USD exact thousands", 1000, model.USD, "$1,000.00"},
		{"negative JPY", -1234567, model.JPY, "¥-1,234,567"},
		{"NaN renders sentinel", math.NaN(), model.JPY, NotAvailable},
		{"positive infinity renders sentinel", math.Inf(1), model.USD, NotAvailable},
		{"negative infinity renders sentinel", math.Inf(-1), model.USD, NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.value, tt.currency); got != tt.want {
				t.Errorf("Format(%v, %s) = %q, want %q", tt.value, tt.currency, got, tt.want)
			}
		})
	}
}
