package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/response"
	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
)

// PortfolioHandler handles HTTP requests for portfolio valuation endpoints.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// ValuedHoldingResponse is a ValuedHolding with the NaN-able percent field
// re-exposed through the JSON null guard.
type ValuedHoldingResponse struct {
	model.ValuedHolding
	PnlPercent *float64 `json:"pnlPercent"`
}

// SummaryResponse is a PortfolioSummary with guarded percent fields.
type SummaryResponse struct {
	TotalValue      float64                 `json:"totalValue"`
	TotalCost       float64                 `json:"totalCost"`
	TotalPnl        float64                 `json:"totalPnl"`
	TotalPnlPercent *float64                `json:"totalPnlPercent"`
	Holdings        []ValuedHoldingResponse `json:"holdings"`
}

// NewSummaryResponse converts a valuation summary for JSON encoding.
// Percent fields carry NaN when a cost basis is zero; encoding/json rejects
// NaN, so they cross the wire as null instead.
func NewSummaryResponse(summary model.PortfolioSummary) SummaryResponse {
	holdings := make([]ValuedHoldingResponse, len(summary.Holdings))
	for i, vh := range summary.Holdings {
		holdings[i] = ValuedHoldingResponse{
			ValuedHolding: vh,
			PnlPercent:    response.FiniteFloat(vh.PnlPercent),
		}
	}

	return SummaryResponse{
		TotalValue:      summary.TotalValue,
		TotalCost:       summary.TotalCost,
		TotalPnl:        summary.TotalPnl,
		TotalPnlPercent: response.FiniteFloat(summary.TotalPnlPercent),
		Holdings:        holdings,
	}
}

// Summary handles GET requests for the current portfolio valuation.
// An optional currency query parameter re-expresses every monetary field in
// JPY or USD at the current exchange rate.
//
// Endpoint: GET /api/portfolio/summary?currency=JPY
// Response: 200 OK with SummaryResponse
// Error: 400 Bad Request for an unsupported display currency
// Error: 500 Internal Server Error if valuation fails
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	currency := model.Currency(strings.ToUpper(r.URL.Query().Get("currency")))

	summary, err := h.portfolioService.Summary(r.Context(), currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrencyPair) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnsupportedCurrencyPair.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, NewSummaryResponse(summary))
}
