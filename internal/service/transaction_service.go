package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/repository"
)

// TransactionService manages the append-only transaction log.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided dependencies.
func NewTransactionService(transactionRepo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// GetTransactions retrieves all transactions, newest first.
func (s *TransactionService) GetTransactions() ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactions()
}

// GetTransactionsForSymbol retrieves all transactions for one symbol, newest first.
func (s *TransactionService) GetTransactionsForSymbol(symbol string) ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactionsForSymbol(symbol)
}

// CreateTransaction records a new transaction. Total is derived from quantity
// and price rather than trusted from the caller.
func (s *TransactionService) CreateTransaction(txType, symbol string, quantity, price, costBasis float64, date, notes string) (model.Transaction, error) {
	tx := model.Transaction{
		ID:        uuid.NewString(),
		Type:      txType,
		Symbol:    symbol,
		Quantity:  quantity,
		Price:     price,
		CostBasis: costBasis,
		Total:     quantity * price,
		Date:      date,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.transactionRepo.CreateTransaction(tx); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// DeleteTransaction removes a transaction from the log.
func (s *TransactionService) DeleteTransaction(id string) error {
	return s.transactionRepo.DeleteTransaction(id)
}
