package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// AlertRepository provides data access methods for the alert table.
// State transitions are computed by the alerts evaluator; this layer only
// persists the resulting rows.
type AlertRepository struct {
	db *sql.DB
}

// NewAlertRepository creates a new AlertRepository with the provided database connection.
func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// GetAlerts retrieves all alerts, oldest first.
func (s *AlertRepository) GetAlerts() ([]model.Alert, error) {
	query := `
          SELECT id, symbol, condition, target_price, status, triggered_at, created_at
          FROM alert
          ORDER BY created_at ASC
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert table: %w", err)
	}
	defer rows.Close()

	alerts := []model.Alert{}

	for rows.Next() {
		var a model.Alert
		var triggeredAtStr sql.NullString
		var createdAtStr string

		err := rows.Scan(
			&a.ID,
			&a.Symbol,
			&a.Condition,
			&a.TargetPrice,
			&a.Status,
			&triggeredAtStr,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert table results: %w", err)
		}

		a.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, err
		}
		if triggeredAtStr.Valid {
			at, err := ParseTime(triggeredAtStr.String)
			if err != nil {
				return nil, err
			}
			a.TriggeredAt = &at
		}

		alerts = append(alerts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert table: %w", err)
	}

	return alerts, nil
}

// CreateAlert inserts a new alert.
func (s *AlertRepository) CreateAlert(a model.Alert) error {
	query := `
          INSERT INTO alert (id, symbol, condition, target_price, status, triggered_at, created_at)
          VALUES (?, ?, ?, ?, ?, NULL, ?)
      `

	_, err := s.db.Exec(query,
		a.ID, a.Symbol, a.Condition, a.TargetPrice, a.Status,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}

	return nil
}

// MarkTriggered persists an evaluator-computed transition to the triggered state.
func (s *AlertRepository) MarkTriggered(id string, triggeredAt time.Time) error {
	query := `
          UPDATE alert
          SET status = ?, triggered_at = ?
          WHERE id = ?
      `

	result, err := s.db.Exec(query,
		model.AlertStatusTriggered, triggeredAt.UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAlertNotFound
	}

	return nil
}

// DeleteAlert removes a single alert by ID.
func (s *AlertRepository) DeleteAlert(id string) error {
	result, err := s.db.Exec(`DELETE FROM alert WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAlertNotFound
	}

	return nil
}

// DeleteTriggered removes all triggered alerts and reports how many went.
// Active alerts are unaffected.
func (s *AlertRepository) DeleteTriggered() (int64, error) {
	result, err := s.db.Exec(`DELETE FROM alert WHERE status = ?`, model.AlertStatusTriggered)
	if err != nil {
		return 0, fmt.Errorf("failed to delete triggered alerts: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check delete result: %w", err)
	}

	return affected, nil
}
