package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/testutil"
)

// TestPortfolioHandler_Summary tests the valuation endpoint.
//
// WHY: This is the primary read of the application. Beyond the happy path,
// the JSON encoding of the NaN percent sentinel matters: encoding/json
// rejects NaN outright, so the handler must map it to null instead of
// failing the response.
func TestPortfolioHandler_Summary(t *testing.T) {
	t.Run("returns the valued portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 1500, model.JPY)
		handler := NewPortfolioHandler(testutil.NewTestPortfolioService(t, db, source))

		testutil.NewHolding().WithSymbol("7203.T").WithQuantity(100).WithPurchasePrice(1200).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/summary", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body SummaryResponse
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if body.TotalValue != 150000 {
			t.Errorf("Expected total value 150000, got %v", body.TotalValue)
		}
		if body.TotalPnlPercent == nil || *body.TotalPnlPercent != 25.0 {
			t.Errorf("Expected total pnl percent 25, got %v", body.TotalPnlPercent)
		}
		if len(body.Holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(body.Holdings))
		}
		if body.Holdings[0].PnlPercent == nil || *body.Holdings[0].PnlPercent != 25.0 {
			t.Errorf("Expected holding pnl percent 25, got %v", body.Holdings[0].PnlPercent)
		}
	})

	t.Run("encodes undefined percent as null", func(t *testing.T) {
		// Zero cost basis produces the NaN sentinel internally
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 1500, model.JPY)
		handler := NewPortfolioHandler(testutil.NewTestPortfolioService(t, db, source))

		testutil.NewHolding().WithSymbol("7203.T").WithQuantity(10).WithPurchasePrice(0).Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio/summary", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if string(raw["totalPnlPercent"]) != "null" {
			t.Errorf("Expected totalPnlPercent null, got %s", raw["totalPnlPercent"])
		}
	})

	t.Run("rejects an unsupported display currency", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		source := testutil.NewMockQuoteSource().WithQuote("7203.T", 1500, model.JPY)
		handler := NewPortfolioHandler(testutil.NewTestPortfolioService(t, db, source))

		testutil.NewHolding().WithSymbol("7203.T").Build(t, db)

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/portfolio/summary",
			map[string]string{"currency": "EUR"},
		)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
