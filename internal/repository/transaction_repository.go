package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// TransactionRepository provides data access methods for the append-only
// transaction log. Deletion by ID is a hard remove; there are no tombstones.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, type, symbol, quantity, price, cost_basis, total, date, notes, created_at`

func scanTransaction(scan func(dest ...any) error) (model.Transaction, error) {
	var t model.Transaction
	var createdAtStr string

	err := scan(
		&t.ID,
		&t.Type,
		&t.Symbol,
		&t.Quantity,
		&t.Price,
		&t.CostBasis,
		&t.Total,
		&t.Date,
		&t.Notes,
		&createdAtStr,
	)
	if err != nil {
		return model.Transaction{}, err
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Transaction{}, err
	}

	return t, nil
}

// GetTransactions retrieves the full transaction log, newest first.
func (s *TransactionRepository) GetTransactions() ([]model.Transaction, error) {
	query := `
          SELECT ` + transactionColumns + `
          FROM stock_transaction
          ORDER BY date DESC, created_at DESC
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransactionsForSymbol retrieves all transactions for one symbol, newest first.
func (s *TransactionRepository) GetTransactionsForSymbol(symbol string) ([]model.Transaction, error) {
	query := `
          SELECT ` + transactionColumns + `
          FROM stock_transaction
          WHERE symbol = ?
          ORDER BY date DESC, created_at DESC
      `

	rows, err := s.db.Query(query, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransactionOnID retrieves a single transaction by ID.
func (s *TransactionRepository) GetTransactionOnID(id string) (model.Transaction, error) {
	query := `
          SELECT ` + transactionColumns + `
          FROM stock_transaction
          WHERE id = ?
      `

	t, err := scanTransaction(s.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to query transaction: %w", err)
	}

	return t, nil
}

// CreateTransaction appends a transaction to the log.
func (s *TransactionRepository) CreateTransaction(t model.Transaction) error {
	query := `
          INSERT INTO stock_transaction (id, type, symbol, quantity, price, cost_basis, total, date, notes, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `

	_, err := s.db.Exec(query,
		t.ID, t.Type, t.Symbol, t.Quantity, t.Price, t.CostBasis, t.Total,
		t.Date, t.Notes, t.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// DeleteTransaction hard-removes a transaction by ID.
func (s *TransactionRepository) DeleteTransaction(id string) error {
	result, err := s.db.Exec(`DELETE FROM stock_transaction WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}
