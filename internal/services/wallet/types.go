package wallet

import (
	"context"
	"time"

	"dwallet/internal/models"
	"dwallet/internal/utils/pagination"

	"github.com/shopspring/decimal"
)

// Service is the public contract of the wallet ledger engine. The ownerID
// argument is the already-authenticated principal; the engine trusts it and
// performs no credential checks of its own.
type Service interface {
	// Wallet management and reads.
	CreateWallet(ctx context.Context, ownerID, name string, currency models.Currency) (*models.Wallet, error)
	ListWallets(ctx context.Context, ownerID string) ([]models.Wallet, error)
	GetWallet(ctx context.Context, ownerID string, walletID uint) (*models.Wallet, error)
	GetBalance(ctx context.Context, ownerID string, walletID uint) (decimal.Decimal, error)

	// Balance mutations. Each commits atomically with its ledger entry.
	Deposit(ctx context.Context, ownerID string, walletID uint, amount decimal.Decimal) error
	Withdraw(ctx context.Context, ownerID string, walletID uint, amount decimal.Decimal) error
	Transfer(ctx context.Context, ownerID string, fromWalletID, toWalletID uint, amount decimal.Decimal) error

	// Ledger reads.
	FilterTransactions(ctx context.Context, ownerID string, walletID uint, filter TransactionFilter) (*pagination.Paginated[models.Transaction], error)
}

// TransactionFilter selects ledger entries touching a wallet within
// [From, To), page by page. Page is 0-based.
type TransactionFilter struct {
	From     time.Time
	To       time.Time
	Page     int
	PageSize int
}

// Config holds the engine's construction-time settings. Zero values are
// replaced with defaults by NewService; the engine keeps no process-wide
// mutable state.
type Config struct {
	DefaultCurrency models.Currency
	MaxRetries      int
}

// CacheOperator is the wallet snapshot cache the engine reads through.
// Cached snapshots serve reads only; the mutation path always re-reads
// the store so the version counter is authoritative.
type CacheOperator interface {
	// GetWallet returns an error matching cache.ErrCacheMiss when the
	// wallet is simply absent; any other error means the backend failed.
	GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, walletID uint) error
}
