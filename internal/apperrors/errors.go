package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrHoldingNotFound indicates that a holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAlertNotFound indicates that an alert with the given ID does not exist.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrDividendNotFound indicates that a dividend record with the given ID does not exist.
	ErrDividendNotFound = errors.New("dividend not found")

	// ErrGoalNotFound indicates that a goal with the given ID does not exist.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrWatchlistItemNotFound indicates that a watchlist entry with the given ID does not exist.
	ErrWatchlistItemNotFound = errors.New("watchlist item not found")

	// ErrQuoteNotFound indicates that the quote source returned no data for a symbol.
	ErrQuoteNotFound = errors.New("quote not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrUnsupportedCurrencyPair indicates a conversion between currencies the
	// converter does not support. Only USD/JPY conversions are defined; the
	// converter fails loudly instead of silently passing the amount through.
	ErrUnsupportedCurrencyPair = errors.New("unsupported currency pair")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidRange indicates that a history range parameter is not one of
	// the ranges the quote source supports.
	ErrInvalidRange = errors.New("invalid history range")

	// ErrWatchlistDuplicate indicates that a symbol is already on the watchlist.
	ErrWatchlistDuplicate = errors.New("symbol already on watchlist")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveHoldings     = errors.New("failed to retrieve holdings")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveAlerts       = errors.New("failed to retrieve alerts")
	ErrFailedToRetrieveDividends    = errors.New("failed to retrieve dividends")
	ErrFailedToRetrieveGoals        = errors.New("failed to retrieve goals")
	ErrFailedToRetrieveWatchlist    = errors.New("failed to retrieve watchlist")
	ErrFailedToRetrieveQuote        = errors.New("failed to retrieve quote")
	ErrFailedToGetSummary           = errors.New("failed to get portfolio summary")
	ErrFailedToGetTaxSummary        = errors.New("failed to get tax summary")
	ErrFailedToGetTargets           = errors.New("failed to get target allocation")
	ErrFailedToSetTargets           = errors.New("failed to set target allocation")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrInvalidBackup indicates that an imported backup document is missing
	// its metadata envelope or cannot be parsed.
	ErrInvalidBackup = errors.New("invalid backup document")

	// ErrBackupKeyNotConfigured indicates an encrypted backup operation was
	// requested without a configured backup key.
	ErrBackupKeyNotConfigured = errors.New("backup encryption key not configured")
)
