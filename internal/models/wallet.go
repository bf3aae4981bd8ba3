package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet represents a cleaner's balance.
type Wallet struct {
	WalletID string          `db:"wallet_id"`
	HolderID string          `db:"holder_id"` // Unique; cleaner_id
	Balance  decimal.Decimal `db:"balance"`
	AuditFields
}

// WalletTransaction represents a single ledger movement.
type WalletTransaction struct {
	TransactionID string          `db:"transaction_id"`
	WalletID      string          `db:"wallet_id"`
	HolderID      string          `db:"holder_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Confirmed     bool            `db:"confirmed"`
	Meta          map[string]any  `db:"meta"` // jsonb
	CreatedAt     time.Time       `db:"created_at"`
}
