// Package backup exports and imports the full application state as a single
// versioned JSON document, optionally wrapped in a fernet token.
package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/maouM-cmd/portfolio-dashboard/internal/apperrors"
	"github.com/maouM-cmd/portfolio-dashboard/internal/model"
	"github.com/maouM-cmd/portfolio-dashboard/internal/repository"
)

// FormatVersion identifies the backup document layout. Import rejects
// documents with a different version.
const FormatVersion = "1.0"

// Meta is the envelope describing a backup document.
type Meta struct {
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`
	ItemCount  int       `json:"itemCount"`
}

// Document is a complete snapshot of all persisted stores.
type Document struct {
	Meta         Meta                  `json:"meta"`
	Holdings     []model.Holding       `json:"holdings"`
	Transactions []model.Transaction   `json:"transactions"`
	Alerts       []model.Alert         `json:"alerts"`
	Dividends    []model.Dividend      `json:"dividends"`
	Goals        []model.Goal          `json:"goals"`
	Watchlist    []model.WatchlistItem `json:"watchlist"`
	Targets      map[string]float64    `json:"targetAllocation"`
}

// Service exports and restores the database.
type Service struct {
	db            *sql.DB
	holdingRepo   *repository.HoldingRepository
	txRepo        *repository.TransactionRepository
	alertRepo     *repository.AlertRepository
	dividendRepo  *repository.DividendRepository
	goalRepo      *repository.GoalRepository
	watchlistRepo *repository.WatchlistRepository
	allocRepo     *repository.AllocationRepository
	fernetKey     string
}

// NewService creates a backup Service. fernetKey may be empty, in which case
// encrypted export and import are unavailable.
func NewService(db *sql.DB, fernetKey string) *Service {
	return &Service{
		db:            db,
		holdingRepo:   repository.NewHoldingRepository(db),
		txRepo:        repository.NewTransactionRepository(db),
		alertRepo:     repository.NewAlertRepository(db),
		dividendRepo:  repository.NewDividendRepository(db),
		goalRepo:      repository.NewGoalRepository(db),
		watchlistRepo: repository.NewWatchlistRepository(db),
		allocRepo:     repository.NewAllocationRepository(db),
		fernetKey:     fernetKey,
	}
}

// Export snapshots every store into a Document.
func (s *Service) Export() (Document, error) {
	var doc Document
	var err error

	if doc.Holdings, err = s.holdingRepo.GetHoldings(); err != nil {
		return Document{}, err
	}
	if doc.Transactions, err = s.txRepo.GetTransactions(); err != nil {
		return Document{}, err
	}
	if doc.Alerts, err = s.alertRepo.GetAlerts(); err != nil {
		return Document{}, err
	}
	if doc.Dividends, err = s.dividendRepo.GetDividends(); err != nil {
		return Document{}, err
	}
	if doc.Goals, err = s.goalRepo.GetGoals(); err != nil {
		return Document{}, err
	}
	if doc.Watchlist, err = s.watchlistRepo.GetWatchlist(); err != nil {
		return Document{}, err
	}
	if doc.Targets, err = s.allocRepo.GetTargets(); err != nil {
		return Document{}, err
	}

	doc.Meta = Meta{
		Version:    FormatVersion,
		ExportedAt: time.Now().UTC(),
		ItemCount: len(doc.Holdings) + len(doc.Transactions) + len(doc.Alerts) +
			len(doc.Dividends) + len(doc.Goals) + len(doc.Watchlist) + len(doc.Targets),
	}

	return doc, nil
}

// ExportEncrypted exports the database and wraps the JSON document in a
// fernet token signed with the configured key.
func (s *Service) ExportEncrypted() ([]byte, error) {
	if s.fernetKey == "" {
		return nil, apperrors.ErrBackupKeyNotConfigured
	}

	keys, err := fernet.DecodeKeys(s.fernetKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode backup key: %w", err)
	}

	doc, err := s.Export()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backup document: %w", err)
	}

	token, err := fernet.EncryptAndSign(payload, keys[0])
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt backup document: %w", err)
	}

	return token, nil
}

// Import validates a backup document and replaces every store with its
// contents. The restore runs in a single transaction; on any failure the
// database is left untouched.
func (s *Service) Import(doc Document) error {
	if doc.Meta.Version != FormatVersion {
		return fmt.Errorf("%w: unsupported version %q", apperrors.ErrInvalidBackup, doc.Meta.Version)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin restore transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"holding", "stock_transaction", "alert", "dividend",
		"goal", "watchlist_item", "target_allocation",
	} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s table: %w", table, err)
		}
	}

	if err := restoreStores(tx, doc); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit restore transaction: %w", err)
	}

	return nil
}

// ImportEncrypted verifies and decrypts a fernet token, then imports the
// document it carries. Tokens are accepted regardless of age.
func (s *Service) ImportEncrypted(token []byte) error {
	if s.fernetKey == "" {
		return apperrors.ErrBackupKeyNotConfigured
	}

	keys, err := fernet.DecodeKeys(s.fernetKey)
	if err != nil {
		return fmt.Errorf("failed to decode backup key: %w", err)
	}

	payload := fernet.VerifyAndDecrypt(token, 0, keys)
	if payload == nil {
		return fmt.Errorf("%w: token verification failed", apperrors.ErrInvalidBackup)
	}

	var doc Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidBackup, err)
	}

	return s.Import(doc)
}

// Parse decodes a plain JSON backup document, rejecting documents without a
// metadata envelope.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidBackup, err)
	}
	if doc.Meta.Version == "" {
		return Document{}, fmt.Errorf("%w: missing meta envelope", apperrors.ErrInvalidBackup)
	}
	return doc, nil
}

func restoreStores(tx *sql.Tx, doc Document) error {
	for _, h := range doc.Holdings {
		_, err := tx.Exec(`
              INSERT INTO holding (id, symbol, name, quantity, purchase_price, purchase_date, currency)
              VALUES (?, ?, ?, ?, ?, ?, ?)
          `, h.ID, h.Symbol, h.Name, h.Quantity, h.PurchasePrice, h.PurchaseDate, string(h.Currency))
		if err != nil {
			return fmt.Errorf("failed to restore holding %s: %w", h.ID, err)
		}
	}

	for _, t := range doc.Transactions {
		createdAt := t.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		_, err := tx.Exec(`
              INSERT INTO stock_transaction (id, type, symbol, quantity, price, cost_basis, total, date, notes, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
          `, t.ID, t.Type, t.Symbol, t.Quantity, t.Price, t.CostBasis, t.Total, t.Date, t.Notes,
			createdAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to restore transaction %s: %w", t.ID, err)
		}
	}

	for _, a := range doc.Alerts {
		var triggeredAt any
		if a.TriggeredAt != nil {
			triggeredAt = a.TriggeredAt.UTC().Format(time.RFC3339)
		}
		_, err := tx.Exec(`
              INSERT INTO alert (id, symbol, condition, target_price, status, triggered_at, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)
          `, a.ID, a.Symbol, a.Condition, a.TargetPrice, a.Status, triggeredAt,
			a.CreatedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to restore alert %s: %w", a.ID, err)
		}
	}

	for _, d := range doc.Dividends {
		createdAt := d.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		_, err := tx.Exec(`
              INSERT INTO dividend (id, symbol, amount, date, notes, created_at)
              VALUES (?, ?, ?, ?, ?, ?)
          `, d.ID, d.Symbol, d.Amount, d.Date, d.Notes, createdAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to restore dividend %s: %w", d.ID, err)
		}
	}

	for _, g := range doc.Goals {
		createdAt := g.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		_, err := tx.Exec(`
              INSERT INTO goal (id, name, target_amount, target_date, created_at)
              VALUES (?, ?, ?, ?, ?)
          `, g.ID, g.Name, g.TargetAmount, g.TargetDate, createdAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to restore goal %s: %w", g.ID, err)
		}
	}

	for _, w := range doc.Watchlist {
		_, err := tx.Exec(`
              INSERT INTO watchlist_item (id, symbol, name, added_at)
              VALUES (?, ?, ?, ?)
          `, w.ID, w.Symbol, w.Name, w.AddedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to restore watchlist item %s: %w", w.ID, err)
		}
	}

	for sector, percent := range doc.Targets {
		_, err := tx.Exec(`
              INSERT INTO target_allocation (sector, percent)
              VALUES (?, ?)
          `, sector, percent)
		if err != nil {
			return fmt.Errorf("failed to restore target allocation %s: %w", sector, err)
		}
	}

	return nil
}
