package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
)

// MakeID generates a unique ID for test entities.
func MakeID() string {
	return uuid.NewString()
}

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// Simple creation with defaults
//	holding := testutil.NewHolding().Build(t, db)
//
//	// Customized holding
//	holding := testutil.NewHolding().
//	    WithSymbol("AAPL").
//	    WithQuantity(10).
//	    WithCurrency(model.USD).
//	    Build(t, db)
type HoldingBuilder struct {
	ID            string
	Symbol        string
	Name          string
	Quantity      float64
	PurchasePrice float64
	PurchaseDate  string
	Currency      model.Currency
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		ID:            MakeID(),
		Symbol:        "7203.T",
		Name:          "Toyota Motor",
		Quantity:      100,
		PurchasePrice: 1200,
		PurchaseDate:  "2024-01-15",
		Currency:      model.JPY,
	}
}

// WithID sets a custom ID.
func (b *HoldingBuilder) WithID(id string) *HoldingBuilder {
	b.ID = id
	return b
}

// WithSymbol sets a custom symbol.
func (b *HoldingBuilder) WithSymbol(symbol string) *HoldingBuilder {
	b.Symbol = symbol
	return b
}

// WithName sets a custom name.
func (b *HoldingBuilder) WithName(name string) *HoldingBuilder {
	b.Name = name
	return b
}

// WithQuantity sets a custom quantity.
func (b *HoldingBuilder) WithQuantity(quantity float64) *HoldingBuilder {
	b.Quantity = quantity
	return b
}

// WithPurchasePrice sets a custom purchase price.
func (b *HoldingBuilder) WithPurchasePrice(price float64) *HoldingBuilder {
	b.PurchasePrice = price
	return b
}

// WithCurrency sets a custom currency.
func (b *HoldingBuilder) WithCurrency(currency model.Currency) *HoldingBuilder {
	b.Currency = currency
	return b
}

// Build inserts the holding into the database and returns the model.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	holding := model.Holding{
		ID:            b.ID,
		Symbol:        b.Symbol,
		Name:          b.Name,
		Quantity:      b.Quantity,
		PurchasePrice: b.PurchasePrice,
		PurchaseDate:  b.PurchaseDate,
		Currency:      b.Currency,
	}

	_, err := db.Exec(`
          INSERT INTO holding (id, symbol, name, quantity, purchase_price, purchase_date, currency)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `, holding.ID, holding.Symbol, holding.Name, holding.Quantity,
		holding.PurchasePrice, holding.PurchaseDate, string(holding.Currency))
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return holding
}

// TransactionBuilder provides a fluent interface for creating test transactions.
type TransactionBuilder struct {
	ID        string
	Type      string
	Symbol    string
	Quantity  float64
	Price     float64
	CostBasis float64
	Date      string
	Notes     string
}

// NewTransaction creates a TransactionBuilder with sensible defaults (a buy).
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:       MakeID(),
		Type:     model.TransactionBuy,
		Symbol:   "7203.T",
		Quantity: 100,
		Price:    1200,
		Date:     "2024-01-15",
	}
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(txType string) *TransactionBuilder {
	b.Type = txType
	return b
}

// WithSymbol sets a custom symbol.
func (b *TransactionBuilder) WithSymbol(symbol string) *TransactionBuilder {
	b.Symbol = symbol
	return b
}

// WithQuantity sets a custom quantity.
func (b *TransactionBuilder) WithQuantity(quantity float64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// WithPrice sets a custom price.
func (b *TransactionBuilder) WithPrice(price float64) *TransactionBuilder {
	b.Price = price
	return b
}

// WithCostBasis sets the per-unit cost basis (sell transactions).
func (b *TransactionBuilder) WithCostBasis(costBasis float64) *TransactionBuilder {
	b.CostBasis = costBasis
	return b
}

// WithDate sets a custom date (YYYY-MM-DD).
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.Date = date
	return b
}

// Build inserts the transaction into the database and returns the model.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	tx := model.Transaction{
		ID:        b.ID,
		Type:      b.Type,
		Symbol:    b.Symbol,
		Quantity:  b.Quantity,
		Price:     b.Price,
		CostBasis: b.CostBasis,
		Total:     b.Quantity * b.Price,
		Date:      b.Date,
		Notes:     b.Notes,
		CreatedAt: time.Now().UTC(),
	}

	_, err := db.Exec(`
          INSERT INTO stock_transaction (id, type, symbol, quantity, price, cost_basis, total, date, notes, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
      `, tx.ID, tx.Type, tx.Symbol, tx.Quantity, tx.Price, tx.CostBasis,
		tx.Total, tx.Date, tx.Notes, tx.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return tx
}

// AlertBuilder provides a fluent interface for creating test alerts.
type AlertBuilder struct {
	ID          string
	Symbol      string
	Condition   string
	TargetPrice float64
	Status      string
}

// NewAlert creates an AlertBuilder with sensible defaults (active, above).
func NewAlert() *AlertBuilder {
	return &AlertBuilder{
		ID:          MakeID(),
		Symbol:      "7203.T",
		Condition:   model.AlertAbove,
		TargetPrice: 1500,
		Status:      model.AlertStatusActive,
	}
}

// WithSymbol sets a custom symbol.
func (b *AlertBuilder) WithSymbol(symbol string) *AlertBuilder {
	b.Symbol = symbol
	return b
}

// WithCondition sets the alert condition.
func (b *AlertBuilder) WithCondition(condition string) *AlertBuilder {
	b.Condition = condition
	return b
}

// WithTargetPrice sets a custom target price.
func (b *AlertBuilder) WithTargetPrice(price float64) *AlertBuilder {
	b.TargetPrice = price
	return b
}

// Triggered marks the alert as already fired.
func (b *AlertBuilder) Triggered() *AlertBuilder {
	b.Status = model.AlertStatusTriggered
	return b
}

// Build inserts the alert into the database and returns the model.
func (b *AlertBuilder) Build(t *testing.T, db *sql.DB) model.Alert {
	t.Helper()

	alert := model.Alert{
		ID:          b.ID,
		Symbol:      b.Symbol,
		Condition:   b.Condition,
		TargetPrice: b.TargetPrice,
		Status:      b.Status,
		CreatedAt:   time.Now().UTC(),
	}

	var triggeredAt any
	if alert.Status == model.AlertStatusTriggered {
		now := time.Now().UTC()
		alert.TriggeredAt = &now
		triggeredAt = now.Format(time.RFC3339)
	}

	_, err := db.Exec(`
          INSERT INTO alert (id, symbol, condition, target_price, status, triggered_at, created_at)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `, alert.ID, alert.Symbol, alert.Condition, alert.TargetPrice,
		alert.Status, triggeredAt, alert.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test alert: %v", err)
	}

	return alert
}

// CreateDividend inserts a dividend record for testing.
func CreateDividend(t *testing.T, db *sql.DB, symbol string, amount float64, date string) model.Dividend {
	t.Helper()

	d := model.Dividend{
		ID:        MakeID(),
		Symbol:    symbol,
		Amount:    amount,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}

	_, err := db.Exec(`
          INSERT INTO dividend (id, symbol, amount, date, notes, created_at)
          VALUES (?, ?, ?, ?, ?, ?)
      `, d.ID, d.Symbol, d.Amount, d.Date, d.Notes, d.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test dividend: %v", err)
	}

	return d
}

// CreateGoal inserts a goal record for testing.
func CreateGoal(t *testing.T, db *sql.DB, name string, targetAmount float64) model.Goal {
	t.Helper()

	g := model.Goal{
		ID:           MakeID(),
		Name:         name,
		TargetAmount: targetAmount,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := db.Exec(`
          INSERT INTO goal (id, name, target_amount, target_date, created_at)
          VALUES (?, ?, ?, ?, ?)
      `, g.ID, g.Name, g.TargetAmount, g.TargetDate, g.CreatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test goal: %v", err)
	}

	return g
}

// CreateWatchlistItem inserts a watchlist entry for testing.
func CreateWatchlistItem(t *testing.T, db *sql.DB, symbol, name string) model.WatchlistItem {
	t.Helper()

	item := model.WatchlistItem{
		ID:      MakeID(),
		Symbol:  symbol,
		Name:    name,
		AddedAt: time.Now().UTC(),
	}

	_, err := db.Exec(`
          INSERT INTO watchlist_item (id, symbol, name, added_at)
          VALUES (?, ?, ?, ?)
      `, item.ID, item.Symbol, item.Name, item.AddedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test watchlist item: %v", err)
	}

	return item
}
