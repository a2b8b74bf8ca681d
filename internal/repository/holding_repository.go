package repository

import (
	"database/sql"
	"fmt"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetHoldings retrieves all holdings ordered by purchase date then symbol.
// Returns an empty slice when no holdings exist.
func (s *HoldingRepository) GetHoldings() ([]model.Holding, error) {
	query := `
          SELECT id, symbol, name, quantity, purchase_price, purchase_date, currency
          FROM holding
          ORDER BY purchase_date ASC, symbol ASC
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		var h model.Holding

		err := rows.Scan(
			&h.ID,
			&h.Symbol,
			&h.Name,
			&h.Quantity,
			&h.PurchasePrice,
			&h.PurchaseDate,
			&h.Currency,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// GetHoldingOnID retrieves a single holding by ID.
func (s *HoldingRepository) GetHoldingOnID(id string) (model.Holding, error) {
	query := `
          SELECT id, symbol, name, quantity, purchase_price, purchase_date, currency
          FROM holding
          WHERE id = ?
      `
	var h model.Holding

	err := s.db.QueryRow(query, id).Scan(
		&h.ID,
		&h.Symbol,
		&h.Name,
		&h.Quantity,
		&h.PurchasePrice,
		&h.PurchaseDate,
		&h.Currency,
	)
	if err == sql.ErrNoRows {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to query holding: %w", err)
	}

	return h, nil
}

// CreateHolding inserts a new holding.
func (s *HoldingRepository) CreateHolding(h model.Holding) error {
	query := `
          INSERT INTO holding (id, symbol, name, quantity, purchase_price, purchase_date, currency)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `

	_, err := s.db.Exec(query, h.ID, h.Symbol, h.Name, h.Quantity, h.PurchasePrice, h.PurchaseDate, h.Currency)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}

	return nil
}

// UpdateHolding updates all mutable fields of an existing holding.
func (s *HoldingRepository) UpdateHolding(h model.Holding) error {
	query := `
          UPDATE holding
          SET symbol = ?, name = ?, quantity = ?, purchase_price = ?, purchase_date = ?, currency = ?
          WHERE id = ?
      `

	result, err := s.db.Exec(query, h.Symbol, h.Name, h.Quantity, h.PurchasePrice, h.PurchaseDate, h.Currency, h.ID)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}

// DeleteHolding removes a holding by ID.
func (s *HoldingRepository) DeleteHolding(id string) error {
	result, err := s.db.Exec(`DELETE FROM holding WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	return nil
}
