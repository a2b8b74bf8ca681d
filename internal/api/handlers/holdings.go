package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
	"github.com/maouM-cmd/portfolio-dashboard/internal/api/response"
	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
	"github.com/maouM-cmd/portfolio-dashboard/internal/validation"
)

// HoldingHandler handles HTTP requests for holding endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the portfolioService.
type HoldingHandler struct {
	portfolioService *service.PortfolioService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependency.
func NewHoldingHandler(portfolioService *service.PortfolioService) *HoldingHandler {
	return &HoldingHandler{
		portfolioService: portfolioService,
	}
}

// Holdings handles GET requests to retrieve all active holdings.
//
// Endpoint: GET /api/holdings
// Response: 200 OK with array of Holding
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) Holdings(w http.ResponseWriter, _ *http.Request) {
	holdings, err := h.portfolioService.GetHoldings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveHoldings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// CreateHolding handles POST requests to record a new holding.
//
// Endpoint: POST /api/holdings
// Request Body: CreateHoldingRequest (symbol, name, quantity, purchasePrice, purchaseDate, currency)
// Response: 201 Created with Holding
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *HoldingHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.portfolioService.CreateHolding(model.Holding{
		Symbol:        req.Symbol,
		Name:          req.Name,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
		Currency:      model.Currency(req.Currency),
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, holding)
}

// UpdateHolding handles PUT requests to update an existing holding.
// All fields are optional; only provided fields change.
//
// Endpoint: PUT /api/holdings/{uuid}
// Request Body: UpdateHoldingRequest
// Response: 200 OK with updated Holding
// Error: 400 Bad Request if the ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if update fails
func (h *HoldingHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateHoldingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateHolding(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.portfolioService.UpdateHolding(holdingID, func(holding *model.Holding) {
		if req.Symbol != nil {
			holding.Symbol = *req.Symbol
		}
		if req.Name != nil {
			holding.Name = *req.Name
		}
		if req.Quantity != nil {
			holding.Quantity = *req.Quantity
		}
		if req.PurchasePrice != nil {
			holding.PurchasePrice = *req.PurchasePrice
		}
		if req.PurchaseDate != nil {
			holding.PurchaseDate = *req.PurchaseDate
		}
		if req.Currency != nil {
			holding.Currency = model.Currency(*req.Currency)
		}
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holding)
}

// DeleteHolding handles DELETE requests to remove a holding permanently.
//
// Endpoint: DELETE /api/holdings/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if holding not found
// Error: 500 Internal Server Error if deletion fails
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "uuid")

	if err := h.portfolioService.DeleteHolding(holdingID); err != nil {
		if errors.Is(err, apperrors.ErrHoldingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrHoldingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete holding", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
