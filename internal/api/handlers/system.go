package handlers

import (
	"net/http"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/response"
	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// Health checks the health of the system and database connectivity
//
// Endpoint: GET /api/system/health
// Response: 200 OK with SystemStatus, 503 Service Unavailable when degraded
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	status := h.systemService.Status()

	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}

	response.RespondJSON(w, code, status)
}

// Version returns the application version.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with {"version": "..."}
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, map[string]string{
		"version": service.Version,
	})
}
