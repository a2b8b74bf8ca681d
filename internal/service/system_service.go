package service

import (
	"database/sql"
	"time"

	"github.com/maouM-cmd/portfolio-dashboard/internal/database"
)

// Version is the application version, overridable at build time with
// -ldflags "-X .../internal/service.Version=...".
var Version = "dev"

// SystemStatus describes the health of the application and its database.
type SystemStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
	CheckedAt time.Time `json:"checkedAt"`
}

// SystemService reports application health.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService with the provided database connection.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// Status checks database connectivity and returns the overall system status.
func (s *SystemService) Status() SystemStatus {
	status := SystemStatus{
		Status:    "ok",
		Version:   Version,
		Database:  "ok",
		CheckedAt: time.Now().UTC(),
	}

	if err := database.HealthCheck(s.db); err != nil {
		status.Status = "degraded"
		status.Database = err.Error()
	}

	return status
}
