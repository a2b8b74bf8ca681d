package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// WatchlistRepository provides data access methods for the watchlist table.
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new WatchlistRepository with the provided database connection.
func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// GetWatchlist retrieves all watched symbols in the order they were added.
func (s *WatchlistRepository) GetWatchlist() ([]model.WatchlistItem, error) {
	query := `
          SELECT id, symbol, name, added_at
          FROM watchlist_item
          ORDER BY added_at ASC
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist table: %w", err)
	}
	defer rows.Close()

	items := []model.WatchlistItem{}

	for rows.Next() {
		var item model.WatchlistItem
		var addedAtStr string

		err := rows.Scan(&item.ID, &item.Symbol, &item.Name, &addedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watchlist table results: %w", err)
		}

		item.AddedAt, err = ParseTime(addedAtStr)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watchlist table: %w", err)
	}

	return items, nil
}

// HasSymbol reports whether a symbol is already on the watchlist.
func (s *WatchlistRepository) HasSymbol(symbol string) (bool, error) {
	var count int

	err := s.db.QueryRow(`SELECT COUNT(*) FROM watchlist_item WHERE symbol = ?`, symbol).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query watchlist table: %w", err)
	}

	return count > 0, nil
}

// CreateItem adds a symbol to the watchlist.
func (s *WatchlistRepository) CreateItem(item model.WatchlistItem) error {
	query := `
          INSERT INTO watchlist_item (id, symbol, name, added_at)
          VALUES (?, ?, ?, ?)
      `

	_, err := s.db.Exec(query,
		item.ID, item.Symbol, item.Name,
		item.AddedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert watchlist item: %w", err)
	}

	return nil
}

// DeleteItem removes a watchlist entry by ID.
func (s *WatchlistRepository) DeleteItem(id string) error {
	result, err := s.db.Exec(`DELETE FROM watchlist_item WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrWatchlistItemNotFound
	}

	return nil
}
