package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/maouM-cmd/portfolio-dashboard/internal/api/response"
	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/backup"
)

// maxBackupBytes bounds the accepted import payload.
const maxBackupBytes = 32 << 20

// BackupHandler handles HTTP requests for backup export and import endpoints.
type BackupHandler struct {
	backupService *backup.Service
}

// NewBackupHandler creates a new BackupHandler with the provided service dependency.
func NewBackupHandler(backupService *backup.Service) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
	}
}

// Export handles GET requests to download the full database as a versioned
// JSON document.
//
// Endpoint: GET /api/backup/export
// Response: 200 OK with backup Document
// Error: 500 Internal Server Error if the export fails
func (h *BackupHandler) Export(w http.ResponseWriter, _ *http.Request) {
	doc, err := h.backupService.Export()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to export backup", err.Error())
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="portfolio-backup.json"`)
	response.RespondJSON(w, http.StatusOK, doc)
}

// ExportEncrypted handles GET requests to download the database as a fernet
// token signed with the configured backup key.
//
// Endpoint: GET /api/backup/export/encrypted
// Response: 200 OK with the token as application/octet-stream
// Error: 503 Service Unavailable when no backup key is configured
// Error: 500 Internal Server Error if the export fails
func (h *BackupHandler) ExportEncrypted(w http.ResponseWriter, _ *http.Request) {
	token, err := h.backupService.ExportEncrypted()
	if err != nil {
		if errors.Is(err, apperrors.ErrBackupKeyNotConfigured) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrBackupKeyNotConfigured.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to export backup", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio-backup.fernet"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(token); err != nil {
		// Too late to change the status; the client sees a short body.
		return
	}
}

// Import handles POST requests to replace the database with an uploaded
// backup document. The restore is transactional: a rejected document leaves
// the current data untouched.
//
// Endpoint: POST /api/backup/import
// Request Body: backup Document JSON
// Response: 200 OK with the document's meta envelope
// Error: 400 Bad Request if the document is invalid
// Error: 500 Internal Server Error if the restore fails
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBackupBytes))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "failed to read request body", err.Error())
		return
	}

	doc, err := backup.Parse(data)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidBackup.Error(), err.Error())
		return
	}

	if err := h.backupService.Import(doc); err != nil {
		if errors.Is(err, apperrors.ErrInvalidBackup) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidBackup.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to import backup", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, doc.Meta)
}

// ImportEncrypted handles POST requests to restore from a fernet token.
//
// Endpoint: POST /api/backup/import/encrypted
// Request Body: raw fernet token
// Response: 200 OK with {"status": "restored"}
// Error: 400 Bad Request if the token fails verification
// Error: 503 Service Unavailable when no backup key is configured
// Error: 500 Internal Server Error if the restore fails
func (h *BackupHandler) ImportEncrypted(w http.ResponseWriter, r *http.Request) {
	token, err := io.ReadAll(io.LimitReader(r.Body, maxBackupBytes))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "failed to read request body", err.Error())
		return
	}

	if err := h.backupService.ImportEncrypted(token); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBackupKeyNotConfigured):
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrBackupKeyNotConfigured.Error(), "")
		case errors.Is(err, apperrors.ErrInvalidBackup):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidBackup.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to import backup", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}
