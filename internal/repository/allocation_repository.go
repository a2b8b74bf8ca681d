package repository

import (
	"database/sql"
	"fmt"
)

// AllocationRepository provides data access methods for the target sector
// allocation table (sector name to target percent).
type AllocationRepository struct {
	db *sql.DB
}

// NewAllocationRepository creates a new AllocationRepository with the provided database connection.
func NewAllocationRepository(db *sql.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// GetTargets retrieves the stored target allocation. Returns an empty map
// when no targets have been set.
func (s *AllocationRepository) GetTargets() (map[string]float64, error) {
	rows, err := s.db.Query(`SELECT sector, percent FROM target_allocation`)
	if err != nil {
		return nil, fmt.Errorf("failed to query target_allocation table: %w", err)
	}
	defer rows.Close()

	targets := map[string]float64{}

	for rows.Next() {
		var sector string
		var percent float64

		if err := rows.Scan(&sector, &percent); err != nil {
			return nil, fmt.Errorf("failed to scan target_allocation results: %w", err)
		}
		targets[sector] = percent
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating target_allocation table: %w", err)
	}

	return targets, nil
}

// SetTargets replaces the entire target allocation atomically.
func (s *AllocationRepository) SetTargets(targets map[string]float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM target_allocation`); err != nil {
		return fmt.Errorf("failed to clear target_allocation table: %w", err)
	}

	for sector, percent := range targets {
		if _, err := tx.Exec(
			`INSERT INTO target_allocation (sector, percent) VALUES (?, ?)`,
			sector, percent,
		); err != nil {
			return fmt.Errorf("failed to insert target allocation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit target allocation: %w", err)
	}

	return nil
}
