package handlers

import (
	"net/http"
	"strconv"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/response"
	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
)

// TaxHandler handles HTTP requests for tax estimation endpoints.
type TaxHandler struct {
	taxService *service.TaxService
}

// NewTaxHandler creates a new TaxHandler with the provided service dependency.
func NewTaxHandler(taxService *service.TaxService) *TaxHandler {
	return &TaxHandler{
		taxService: taxService,
	}
}

// Summary handles GET requests for the annual tax estimate.
// The year query parameter selects which year's realized gains to cover;
// it defaults to the current year. Unrealized figures always reflect the
// current holdings.
//
// Endpoint: GET /api/tax/summary?year=2024
// Response: 200 OK with TaxSummary
// Error: 400 Bad Request for a non-numeric year
// Error: 500 Internal Server Error if the estimate fails
func (h *TaxHandler) Summary(w http.ResponseWriter, r *http.Request) {
	year := 0
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid year", err.Error())
			return
		}
		year = parsed
	}

	summary, err := h.taxService.AnnualSummary(r.Context(), year)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetTaxSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}
