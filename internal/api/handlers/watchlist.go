package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
	"github.com/maouM-cmd/portfolio-dashboard/internal/api/response"
	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
	"github.com/maouM-cmd/portfolio-dashboard/internal/validation"
)

// WatchlistHandler handles HTTP requests for watchlist endpoints.
type WatchlistHandler struct {
	watchlistService *service.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler with the provided service dependency.
func NewWatchlistHandler(watchlistService *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
	}
}

// Watchlist handles GET requests to retrieve the watchlist with live quotes.
// Items whose quote could not be fetched come back with a null quote.
//
// Endpoint: GET /api/watchlist
// Response: 200 OK with array of WatchedSymbol
// Error: 500 Internal Server Error if retrieval fails
func (h *WatchlistHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	watched, err := h.watchlistService.GetWatchlist(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveWatchlist.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, watched)
}

// AddItem handles POST requests to follow a new symbol.
//
// Endpoint: POST /api/watchlist
// Request Body: AddWatchlistItemRequest (symbol, name)
// Response: 201 Created with WatchlistItem
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the symbol is already watched
// Error: 500 Internal Server Error if creation fails
func (h *WatchlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.AddWatchlistItemRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateAddWatchlistItem(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	item, err := h.watchlistService.AddSymbol(req.Symbol, req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrWatchlistDuplicate) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrWatchlistDuplicate.Error(), req.Symbol)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to add watchlist item", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, item)
}

// RemoveItem handles DELETE requests to stop following a symbol.
//
// Endpoint: DELETE /api/watchlist/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the entry does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *WatchlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "uuid")

	if err := h.watchlistService.RemoveItem(itemID); err != nil {
		if errors.Is(err, apperrors.ErrWatchlistItemNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrWatchlistItemNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to remove watchlist item", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
