package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is a named, currency-typed balance owned by a single user.
// The (owner_id, name) pair is unique. Version backs the optimistic
// concurrency check: every committed balance change bumps it by one,
// and a write conditioned on a stale version affects zero rows.
type Wallet struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	OwnerID   string          `gorm:"size:64;not null;uniqueIndex:idx_wallets_owner_name" json:"owner_id"`
	Name      string          `gorm:"size:128;not null;uniqueIndex:idx_wallets_owner_name" json:"name"`
	Currency  Currency        `gorm:"size:3;not null" json:"currency"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0;check:balance >= 0" json:"balance"`
	Version   uint            `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Wallet) TableName() string {
	return "wallets"
}
