// Package cache provides the Redis-backed read cache for wallet snapshots.
// Cached wallets are always whole committed rows, so a cache read can be
// stale but never internally inconsistent.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dwallet/internal/models"

	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

func walletKey(walletID uint) string {
	return fmt.Sprintf("wallet:id:%d", walletID)
}

// GetWallet returns the cached wallet snapshot or ErrCacheMiss.
func (s *CacheService) GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error) {
	data, err := s.client.Get(ctx, walletKey(walletID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached wallet: %w", err)
	}
	var wallet models.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached wallet: %w", err)
	}
	return &wallet, nil
}

func (s *CacheService) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet: %w", err)
	}
	return s.client.Set(ctx, walletKey(wallet.ID), data, s.ttl).Err()
}

func (s *CacheService) InvalidateWallet(ctx context.Context, walletID uint) error {
	return s.client.Del(ctx, walletKey(walletID)).Err()
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
