package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType enumerates the balance-changing events the ledger records.
type TransactionType string

const (
	TransactionDeposit  TransactionType = "DEPOSIT"
	TransactionWithdraw TransactionType = "WITHDRAW"
	TransactionTransfer TransactionType = "TRANSFER"
)

// Transaction is one immutable entry in the append-only ledger. Rows are
// created in the same database transaction as the balance change they
// describe and are never updated or deleted afterwards.
//
// FromWalletID is nil for deposits, ToWalletID is nil for withdrawals,
// transfers carry both. IDs are random UUIDs rather than a sequence so
// they are non-guessable and free of insert contention.
type Transaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	Type         TransactionType `gorm:"size:16;not null;index" json:"type"`
	Amount       decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	FromWalletID *uint           `gorm:"index" json:"from_wallet_id,omitempty"`
	ToWalletID   *uint           `gorm:"index" json:"to_wallet_id,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
