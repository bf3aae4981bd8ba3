package repositories

import (
	"context"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletLedger credits wallet balances and records the movement.
type WalletLedger interface {
	// Deposit credits amount to the cleaner's wallet, creating the wallet on first use,
	// and returns the confirmed ledger transaction. The balance update and the ledger
	// row are written atomically. Deposit is not idempotent.
	Deposit(ctx context.Context, holder domain.Cleaner, amount decimal.Decimal, meta map[string]any) (*domain.WalletTransaction, error)
}
