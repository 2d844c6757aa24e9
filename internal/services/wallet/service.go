package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dwallet/internal/models"
	"dwallet/internal/repositories"
	"dwallet/internal/repositories/cache"
	"dwallet/internal/utils/pagination"

	"github.com/shopspring/decimal"
)

type service struct {
	repo    repositories.WalletRepository
	cache   CacheOperator
	config  Config
	metrics MetricsCollector
}

// NewService creates a new wallet ledger engine.
func NewService(
	repo repositories.WalletRepository,
	cache CacheOperator,
	config Config,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	if config.DefaultCurrency == "" {
		config.DefaultCurrency = DefaultCurrency
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = DefaultMaxRetries
	}

	// Metrics is optional, fall back to a no-op collector.
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	return &service{
		repo:    repo,
		cache:   cache,
		config:  config,
		metrics: metrics,
	}
}

func (s *service) CreateWallet(ctx context.Context, ownerID, name string, currency models.Currency) (*models.Wallet, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}
	if currency == "" {
		currency = s.config.DefaultCurrency
	}
	if !currency.IsValid() {
		return nil, ErrInvalidCurrency
	}

	existing, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing wallets: %w", err)
	}
	for _, w := range existing {
		if w.Name == name {
			return nil, ErrWalletAlreadyExists
		}
	}

	wallet := &models.Wallet{
		OwnerID:  ownerID,
		Name:     name,
		Currency: currency,
		Balance:  decimal.Zero,
	}
	if err := s.repo.Create(ctx, wallet); err != nil {
		// Backstop for the race between the pre-check and the insert; the
		// unique (owner, name) index has the final word.
		if errors.Is(err, repositories.ErrDuplicateWallet) {
			return nil, ErrWalletAlreadyExists
		}
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) ListWallets(ctx context.Context, ownerID string) ([]models.Wallet, error) {
	wallets, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (s *service) GetWallet(ctx context.Context, ownerID string, walletID uint) (*models.Wallet, error) {
	// Snapshot reads may come from cache; only whole committed rows are
	// cached, so a hit can be stale but never half-applied.
	cached, err := s.cache.GetWallet(ctx, walletID)
	if err == nil {
		s.metrics.RecordCacheHit("get_wallet")
		if cached.OwnerID != ownerID {
			return nil, ErrWalletNotFound
		}
		return cached, nil
	}
	if errors.Is(err, cache.ErrCacheMiss) {
		s.metrics.RecordCacheMiss("get_wallet")
	} else {
		// A failing cache backend must not fail reads; fall through to
		// the store, but do not count it as a miss.
		s.metrics.RecordError("get_wallet", "cache")
	}

	wallet, err := s.ownedWallet(ctx, ownerID, walletID)
	if err != nil {
		return nil, err
	}

	s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) GetBalance(ctx context.Context, ownerID string, walletID uint) (decimal.Decimal, error) {
	wallet, err := s.GetWallet(ctx, ownerID, walletID)
	if err != nil {
		return decimal.Zero, err
	}
	return wallet.Balance, nil
}

func (s *service) Deposit(ctx context.Context, ownerID string, walletID uint, amount decimal.Decimal) error {
	defer s.timeOperation("deposit")()

	if err := validateAmount(amount); err != nil {
		s.metrics.RecordError("deposit", "invalid_amount")
		return err
	}

	for attempt := 0; attempt < s.config.MaxRetries; attempt++ {
		wallet, err := s.ownedWallet(ctx, ownerID, walletID)
		if err != nil {
			return err
		}

		wallet.Balance = wallet.Balance.Add(amount)

		err = s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
			if err := tx.UpdateBalance(ctx, wallet); err != nil {
				return err
			}
			return tx.CreateTransaction(ctx, &models.Transaction{
				Type:       models.TransactionDeposit,
				Amount:     amount,
				ToWalletID: &wallet.ID,
			})
		})
		if errors.Is(err, repositories.ErrVersionConflict) {
			s.metrics.RecordConflictRetry("deposit")
			continue
		}
		if err != nil {
			s.metrics.RecordError("deposit", "store")
			return fmt.Errorf("deposit failed: %w", err)
		}

		s.cache.InvalidateWallet(ctx, wallet.ID)
		s.metrics.RecordTransaction("deposit", amount)
		return nil
	}

	s.metrics.RecordError("deposit", "conflict")
	return ErrConflict
}

func (s *service) Withdraw(ctx context.Context, ownerID string, walletID uint, amount decimal.Decimal) error {
	defer s.timeOperation("withdraw")()

	if err := validateAmount(amount); err != nil {
		s.metrics.RecordError("withdraw", "invalid_amount")
		return err
	}

	for attempt := 0; attempt < s.config.MaxRetries; attempt++ {
		wallet, err := s.ownedWallet(ctx, ownerID, walletID)
		if err != nil {
			return err
		}

		if wallet.Balance.LessThan(amount) {
			s.metrics.RecordError("withdraw", "insufficient_funds")
			return ErrInsufficientFunds
		}
		wallet.Balance = wallet.Balance.Sub(amount)

		err = s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
			if err := tx.UpdateBalance(ctx, wallet); err != nil {
				return err
			}
			return tx.CreateTransaction(ctx, &models.Transaction{
				Type:         models.TransactionWithdraw,
				Amount:       amount,
				FromWalletID: &wallet.ID,
			})
		})
		if errors.Is(err, repositories.ErrVersionConflict) {
			s.metrics.RecordConflictRetry("withdraw")
			continue
		}
		if err != nil {
			s.metrics.RecordError("withdraw", "store")
			return fmt.Errorf("withdraw failed: %w", err)
		}

		s.cache.InvalidateWallet(ctx, wallet.ID)
		s.metrics.RecordTransaction("withdraw", amount)
		return nil
	}

	s.metrics.RecordError("withdraw", "conflict")
	return ErrConflict
}

func (s *service) Transfer(ctx context.Context, ownerID string, fromWalletID, toWalletID uint, amount decimal.Decimal) error {
	defer s.timeOperation("transfer")()

	if err := validateAmount(amount); err != nil {
		s.metrics.RecordError("transfer", "invalid_amount")
		return err
	}
	if fromWalletID == toWalletID {
		s.metrics.RecordError("transfer", "self_transfer")
		return ErrSelfTransfer
	}

	for attempt := 0; attempt < s.config.MaxRetries; attempt++ {
		// Only the source must belong to the caller; the destination may be
		// any wallet in the system (person-to-person transfer).
		source, err := s.ownedWallet(ctx, ownerID, fromWalletID)
		if err != nil {
			return err
		}
		dest, err := s.repo.GetByID(ctx, toWalletID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return ErrTargetWalletNotFound
			}
			return fmt.Errorf("failed to get target wallet: %w", err)
		}

		if source.Currency != dest.Currency {
			s.metrics.RecordError("transfer", "currency_mismatch")
			return ErrCurrencyMismatch
		}
		if source.Balance.LessThan(amount) {
			s.metrics.RecordError("transfer", "insufficient_funds")
			return ErrInsufficientFunds
		}

		source.Balance = source.Balance.Sub(amount)
		dest.Balance = dest.Balance.Add(amount)

		// Both conditional writes and the single TRANSFER entry commit as
		// one unit. Wallets are written in ascending id order so two
		// opposite-direction transfers can never circular-wait.
		first, second := source, dest
		if second.ID < first.ID {
			first, second = second, first
		}
		err = s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
			if err := tx.UpdateBalance(ctx, first); err != nil {
				return err
			}
			if err := tx.UpdateBalance(ctx, second); err != nil {
				return err
			}
			return tx.CreateTransaction(ctx, &models.Transaction{
				Type:         models.TransactionTransfer,
				Amount:       amount,
				FromWalletID: &source.ID,
				ToWalletID:   &dest.ID,
			})
		})
		if errors.Is(err, repositories.ErrVersionConflict) {
			s.metrics.RecordConflictRetry("transfer")
			continue
		}
		if err != nil {
			s.metrics.RecordError("transfer", "store")
			return fmt.Errorf("transfer failed: %w", err)
		}

		s.cache.InvalidateWallet(ctx, source.ID)
		s.cache.InvalidateWallet(ctx, dest.ID)
		s.metrics.RecordTransaction("transfer", amount)
		return nil
	}

	s.metrics.RecordError("transfer", "conflict")
	return ErrConflict
}

func (s *service) FilterTransactions(ctx context.Context, ownerID string, walletID uint, filter TransactionFilter) (*pagination.Paginated[models.Transaction], error) {
	if !filter.From.Before(filter.To) {
		return nil, ErrInvalidRange
	}
	if filter.Page < 0 || filter.PageSize <= 0 {
		return nil, ErrInvalidRange
	}

	wallet, err := s.ownedWallet(ctx, ownerID, walletID)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountTransactions(ctx, wallet.ID, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	txns, err := s.repo.FilterTransactions(ctx, wallet.ID, filter.From, filter.To,
		filter.PageSize, filter.Page*filter.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to filter transactions: %w", err)
	}

	page := pagination.New(filter.Page, filter.PageSize, total, txns)
	return &page, nil
}

// ownedWallet loads a wallet from the store and verifies ownership in one
// query. The mutation paths always go through here rather than the cache so
// the version counter they condition on is authoritative.
func (s *service) ownedWallet(ctx context.Context, ownerID string, walletID uint) (*models.Wallet, error) {
	wallet, err := s.repo.GetByIDAndOwner(ctx, walletID, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

func (s *service) timeOperation(operation string) func() {
	start := time.Now()
	return func() {
		s.metrics.RecordOperationDuration(operation, time.Since(start))
	}
}

// validateAmount rejects non-positive amounts and anything finer than the
// currency's minor unit.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(amountScale)) {
		return ErrInvalidAmount
	}
	return nil
}
