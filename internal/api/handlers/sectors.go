package handlers

import (
	"net/http"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/request"
	"github.com/maouM-cmd/portfolio-dashboard/internal/api/response"
	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
	"github.com/maouM-cmd/portfolio-dashboard/internal/validation"
)

// SectorHandler handles HTTP requests for sector allocation and analysis endpoints.
type SectorHandler struct {
	sectorService *service.SectorService
}

// NewSectorHandler creates a new SectorHandler with the provided service dependency.
func NewSectorHandler(sectorService *service.SectorService) *SectorHandler {
	return &SectorHandler{
		sectorService: sectorService,
	}
}

// Groups handles GET requests for the portfolio grouped by sector.
//
// Endpoint: GET /api/sectors
// Response: 200 OK with array of SectorGroup, largest sector first
// Error: 500 Internal Server Error if grouping fails
func (h *SectorHandler) Groups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.sectorService.Groups(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to group holdings by sector", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, groups)
}

// Rebalance handles GET requests for rebalancing suggestions against the
// stored target allocation.
//
// Endpoint: GET /api/sectors/rebalance
// Response: 200 OK with array of RebalanceSuggestion, largest deviation first
// Error: 500 Internal Server Error if the suggestion run fails
func (h *SectorHandler) Rebalance(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.sectorService.Rebalance(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to build rebalance suggestions", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, suggestions)
}

// Analysis handles GET requests for the rule-based portfolio diagnostics.
//
// Endpoint: GET /api/sectors/analysis
// Response: 200 OK with PortfolioAnalysis
// Error: 500 Internal Server Error if analysis fails
func (h *SectorHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.sectorService.Analysis(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to analyze portfolio", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, analysis)
}

// Targets handles GET requests for the stored target allocation.
//
// Endpoint: GET /api/sectors/targets
// Response: 200 OK with map of sector to target percent
// Error: 500 Internal Server Error if retrieval fails
func (h *SectorHandler) Targets(w http.ResponseWriter, _ *http.Request) {
	targets, err := h.sectorService.GetTargets()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetTargets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, targets)
}

// SetTargets handles PUT requests to replace the target allocation.
//
// Endpoint: PUT /api/sectors/targets
// Request Body: SetTargetsRequest (map of sector to percent)
// Response: 200 OK with the stored map
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the update fails
func (h *SectorHandler) SetTargets(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SetTargetsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSetTargets(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.sectorService.SetTargets(req.Targets); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSetTargets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, req.Targets)
}
