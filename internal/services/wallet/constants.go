package wallet

import "dwallet/internal/models"

// Default configuration values.
const (
	// DefaultMaxRetries bounds the optimistic-concurrency retry loop before
	// an operation gives up with ErrConflict.
	DefaultMaxRetries = 5

	// amountScale is the maximum number of decimal places an amount may
	// carry; finer-grained inputs are rejected.
	amountScale = 2
)

// DefaultCurrency is assigned to wallets created without an explicit currency.
const DefaultCurrency = models.CurrencyUSD
