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

// AlertHandler handles HTTP requests for price alert endpoints.
type AlertHandler struct {
	alertService *service.AlertService
}

// NewAlertHandler creates a new AlertHandler with the provided service dependency.
func NewAlertHandler(alertService *service.AlertService) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
	}
}

// Alerts handles GET requests to retrieve all alerts, active and triggered.
//
// Endpoint: GET /api/alerts
// Response: 200 OK with array of Alert
// Error: 500 Internal Server Error if retrieval fails
func (h *AlertHandler) Alerts(w http.ResponseWriter, _ *http.Request) {
	alerts, err := h.alertService.GetAlerts()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAlerts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, alerts)
}

// CreateAlert handles POST requests to register a new price alert.
//
// Endpoint: POST /api/alerts
// Request Body: CreateAlertRequest (symbol, condition, targetPrice)
// Response: 201 Created with Alert
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *AlertHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAlertRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAlert(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	alert, err := h.alertService.CreateAlert(req.Symbol, req.Condition, req.TargetPrice)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create alert", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, alert)
}

// Evaluate handles POST requests to run an alert evaluation pass now.
// Every active alert's symbol is quoted and boundary crossings fire once.
//
// Endpoint: POST /api/alerts/evaluate
// Response: 200 OK with array of TriggeredAlert (empty when nothing fired)
// Error: 500 Internal Server Error if the pass fails
func (h *AlertHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	triggered, err := h.alertService.EvaluateNow(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to evaluate alerts", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, triggered)
}

// ClearTriggered handles DELETE requests to remove all triggered alerts.
//
// Endpoint: DELETE /api/alerts/triggered
// Response: 200 OK with {"deleted": n}
// Error: 500 Internal Server Error if deletion fails
func (h *AlertHandler) ClearTriggered(w http.ResponseWriter, _ *http.Request) {
	deleted, err := h.alertService.ClearTriggered()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to clear triggered alerts", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// DeleteAlert handles DELETE requests to remove a single alert.
//
// Endpoint: DELETE /api/alerts/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if alert not found
// Error: 500 Internal Server Error if deletion fails
func (h *AlertHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	alertID := chi.URLParam(r, "uuid")

	if err := h.alertService.DeleteAlert(alertID); err != nil {
		if errors.Is(err, apperrors.ErrAlertNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAlertNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete alert", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
