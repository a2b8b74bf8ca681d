package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// DividendRepository provides data access methods for the dividend table.
type DividendRepository struct {
	db *sql.DB
}

// NewDividendRepository creates a new DividendRepository with the provided database connection.
func NewDividendRepository(db *sql.DB) *DividendRepository {
	return &DividendRepository{db: db}
}

// GetDividends retrieves all recorded dividends, newest first.
func (s *DividendRepository) GetDividends() ([]model.Dividend, error) {
	query := `
          SELECT id, symbol, amount, date, notes, created_at
          FROM dividend
          ORDER BY date DESC, created_at DESC
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dividend table: %w", err)
	}
	defer rows.Close()

	dividends := []model.Dividend{}

	for rows.Next() {
		var d model.Dividend
		var createdAtStr string

		err := rows.Scan(&d.ID, &d.Symbol, &d.Amount, &d.Date, &d.Notes, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dividend table results: %w", err)
		}

		d.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, err
		}

		dividends = append(dividends, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dividend table: %w", err)
	}

	return dividends, nil
}

// GetTotalDividends returns the sum of all recorded dividend amounts.
func (s *DividendRepository) GetTotalDividends() (float64, error) {
	var total sql.NullFloat64

	err := s.db.QueryRow(`SELECT SUM(amount) FROM dividend`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum dividends: %w", err)
	}

	return total.Float64, nil
}

// CreateDividend inserts a new dividend record.
func (s *DividendRepository) CreateDividend(d model.Dividend) error {
	query := `
          INSERT INTO dividend (id, symbol, amount, date, notes, created_at)
          VALUES (?, ?, ?, ?, ?, ?)
      `

	_, err := s.db.Exec(query,
		d.ID, d.Symbol, d.Amount, d.Date, d.Notes,
		d.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert dividend: %w", err)
	}

	return nil
}

// DeleteDividend removes a dividend record by ID.
func (s *DividendRepository) DeleteDividend(id string) error {
	result, err := s.db.Exec(`DELETE FROM dividend WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dividend: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrDividendNotFound
	}

	return nil
}
