package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/response"
	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
)

// QuoteHandler handles HTTP requests for quote and price history endpoints.
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler with the provided service dependency.
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// Quote handles GET requests for a single symbol's current snapshot.
//
// Endpoint: GET /api/quotes/{symbol}
// Response: 200 OK with Quote
// Error: 404 Not Found if the source has no data for the symbol
// Error: 500 Internal Server Error if the fetch fails
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	quote, err := h.quoteService.GetQuote(r.Context(), symbol)
	if err != nil {
		if errors.Is(err, apperrors.ErrQuoteNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrQuoteNotFound.Error(), symbol)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveQuote.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, quote)
}

// History handles GET requests for a symbol's daily price history.
// The range query parameter selects the window and defaults to 1mo.
//
// Endpoint: GET /api/quotes/{symbol}/history?range=6mo
// Response: 200 OK with array of HistoricalPrice
// Error: 400 Bad Request for an unsupported range
// Error: 500 Internal Server Error if the fetch fails
func (h *QuoteHandler) History(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	historyRange := r.URL.Query().Get("range")
	if historyRange == "" {
		historyRange = "1mo"
	}

	history, err := h.quoteService.GetHistory(r.Context(), symbol, historyRange)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRange) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidRange.Error(), historyRange)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveQuote.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, history)
}

// UsdJpy handles GET requests for the current USD/JPY exchange rate.
// The adapter falls back to a fixed rate when the source is unreachable, so
// this endpoint always answers.
//
// Endpoint: GET /api/quotes/fx/usdjpy
// Response: 200 OK with {"rate": n}
func (h *QuoteHandler) UsdJpy(w http.ResponseWriter, r *http.Request) {
	rate := h.quoteService.GetUsdJpyRate(r.Context())
	response.RespondJSON(w, http.StatusOK, map[string]float64{"rate": rate})
}
