package repositories

import (
	"context"
	"errors"
	"time"

	"dwallet/internal/models"
)

var (
	ErrWalletNotFound  = errors.New("wallet not found")
	ErrDuplicateWallet = errors.New("wallet already exists")
	ErrVersionConflict = errors.New("wallet version conflict")
)

// WalletRepository is the storage contract the ledger engine runs against.
//
// UpdateBalance is the conditional-write primitive: it persists the wallet's
// balance only if the stored version still equals wallet.Version, bumping the
// version on success and returning ErrVersionConflict otherwise. All writes
// issued inside one ExecuteInTransaction callback commit or roll back as a
// single unit.
type WalletRepository interface {
	// Wallet reads and writes.
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByID(ctx context.Context, id uint) (*models.Wallet, error)
	GetByIDAndOwner(ctx context.Context, id uint, ownerID string) (*models.Wallet, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Wallet, error)
	UpdateBalance(ctx context.Context, wallet *models.Wallet) error

	// Append-only ledger writes and range reads.
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	FilterTransactions(ctx context.Context, walletID uint, from, to time.Time, limit, offset int) ([]models.Transaction, error)
	CountTransactions(ctx context.Context, walletID uint, from, to time.Time) (int64, error)

	// ExecuteInTransaction runs fn against a repository bound to one database
	// transaction; fn returning an error rolls everything back.
	ExecuteInTransaction(fn func(WalletRepository) error) error
}
