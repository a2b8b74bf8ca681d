package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
	"github.com/maouM-cmd/portfolio-dashboard/internal/api/response"
	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
	"github.com/maouM-cmd/portfolio-dashboard/internal/validation"
)

// DividendHandler handles HTTP requests for dividend endpoints.
type DividendHandler struct {
	dividendService *service.DividendService
}

// NewDividendHandler creates a new DividendHandler with the provided service dependency.
func NewDividendHandler(dividendService *service.DividendService) *DividendHandler {
	return &DividendHandler{
		dividendService: dividendService,
	}
}

// Dividends handles GET requests to retrieve all recorded dividends.
//
// Endpoint: GET /api/dividends
// Response: 200 OK with array of Dividend
// Error: 500 Internal Server Error if retrieval fails
func (h *DividendHandler) Dividends(w http.ResponseWriter, _ *http.Request) {
	dividends, err := h.dividendService.GetDividends()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDividends.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, dividends)
}

// Total handles GET requests for the sum of all recorded dividends.
//
// Endpoint: GET /api/dividends/total
// Response: 200 OK with {"total": n}
// Error: 500 Internal Server Error if retrieval fails
func (h *DividendHandler) Total(w http.ResponseWriter, _ *http.Request) {
	total, err := h.dividendService.GetTotalDividends()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveDividends.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]float64{"total": total})
}

// Upcoming handles GET requests for predicted payouts over the next twelve
// months, derived from the static payout schedules and current holdings.
//
// Endpoint: GET /api/dividends/upcoming
// Response: 200 OK with array of UpcomingDividend sorted by date
// Error: 500 Internal Server Error if prediction fails
func (h *DividendHandler) Upcoming(w http.ResponseWriter, _ *http.Request) {
	upcoming, err := h.dividendService.UpcomingDividends(time.Now())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to predict upcoming dividends", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, upcoming)
}

// CreateDividend handles POST requests to record a received dividend.
//
// Endpoint: POST /api/dividends
// Request Body: CreateDividendRequest (symbol, amount, date, notes)
// Response: 201 Created with Dividend
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *DividendHandler) CreateDividend(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateDividendRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateDividend(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	dividend, err := h.dividendService.CreateDividend(req.Symbol, req.Amount, req.Date, req.Notes)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create dividend", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, dividend)
}

// DeleteDividend handles DELETE requests to remove a dividend record.
//
// Endpoint: DELETE /api/dividends/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if dividend not found
// Error: 500 Internal Server Error if deletion fails
func (h *DividendHandler) DeleteDividend(w http.ResponseWriter, r *http.Request) {
	dividendID := chi.URLParam(r, "uuid")

	if err := h.dividendService.DeleteDividend(dividendID); err != nil {
		if errors.Is(err, apperrors.ErrDividendNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrDividendNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete dividend", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
