package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Holding table
		CREATE TABLE holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(20) NOT NULL,
			name VARCHAR(100) NOT NULL,
			quantity REAL NOT NULL,
			purchase_price REAL NOT NULL,
			purchase_date VARCHAR(10) NOT NULL,
			currency VARCHAR(3) NOT NULL
		);

		-- Transaction table (named stock_transaction; "transaction" is reserved)
		CREATE TABLE stock_transaction (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			type VARCHAR(10) NOT NULL,
			symbol VARCHAR(20) NOT NULL,
			quantity REAL NOT NULL,
			price REAL NOT NULL,
			cost_basis REAL NOT NULL DEFAULT 0,
			total REAL NOT NULL,
			date VARCHAR(10) NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		);
		CREATE INDEX idx_transaction_symbol ON stock_transaction(symbol);
		CREATE INDEX idx_transaction_date ON stock_transaction(date);

		-- Alert table
		CREATE TABLE alert (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(20) NOT NULL,
			condition VARCHAR(10) NOT NULL,
			target_price REAL NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'active',
			triggered_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL
		);

		-- Dividend table
		CREATE TABLE dividend (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(20) NOT NULL,
			amount REAL NOT NULL,
			date VARCHAR(10) NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		);

		-- Goal table
		CREATE TABLE goal (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			target_amount REAL NOT NULL,
			target_date VARCHAR(10) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		);

		-- Watchlist table
		CREATE TABLE watchlist_item (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(20) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL,
			added_at TIMESTAMP NOT NULL
		);

		-- Target allocation table
		CREATE TABLE target_allocation (
			sector VARCHAR(50) NOT NULL PRIMARY KEY,
			percent REAL NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}
