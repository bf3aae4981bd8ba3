package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cleanbook_engine/internal/apperrors"
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/cleanbook_engine/internal/core/ports/repositories"
	"github.com/SscSPs/cleanbook_engine/internal/models"
	"github.com/SscSPs/cleanbook_engine/internal/pkg/clock"
	"github.com/SscSPs/cleanbook_engine/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxWalletRepository struct {
	BaseRepository
	clock clock.Clock
}

// newPgxWalletRepository creates a new repository for cleaner wallets.
func newPgxWalletRepository(pool *pgxpool.Pool, c clock.Clock) *PgxWalletRepository {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}, clock: c}
}

var _ portsrepo.WalletLedger = (*PgxWalletRepository)(nil)

// newDepositModel builds the ledger row for a confirmed deposit.
func newDepositModel(walletID, holderID string, amount decimal.Decimal, meta map[string]any, now clock.Clock) models.WalletTransaction {
	if meta == nil {
		meta = map[string]any{}
	}
	return models.WalletTransaction{
		TransactionID: uuid.NewString(),
		WalletID:      walletID,
		HolderID:      holderID,
		Type:          string(domain.WalletDeposit),
		Amount:        amount,
		Confirmed:     true,
		Meta:          meta,
		CreatedAt:     now.Now(),
	}
}

// Deposit credits the holder's wallet. The wallet row is created on first use and
// locked for the rest of the transaction so concurrent deposits serialize.
func (r *PgxWalletRepository) Deposit(ctx context.Context, holder domain.Cleaner, amount decimal.Decimal, meta map[string]any) (*domain.WalletTransaction, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: deposit amount %s is negative", apperrors.ErrValidation, amount.String())
	}

	var txn domain.WalletTransaction
	err := r.WithinTransaction(ctx, func(txCtx context.Context) error {
		walletID, err := r.lockWallet(txCtx, holder.CleanerID)
		if err != nil {
			return err
		}

		model := newDepositModel(walletID, holder.CleanerID, amount, meta, r.clock)

		batch := &pgx.Batch{}
		batch.Queue(`
			INSERT INTO wallet_transactions (transaction_id, wallet_id, holder_id, type, amount, confirmed, meta, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`, model.TransactionID, model.WalletID, model.HolderID, model.Type, model.Amount, model.Confirmed, model.Meta, model.CreatedAt)
		batch.Queue(`
			UPDATE wallets
			SET balance = COALESCE(balance, 0) + $2, updated_at = $3
			WHERE wallet_id = $1;
		`, model.WalletID, model.Amount, model.CreatedAt)

		br := r.db(txCtx).SendBatch(txCtx, batch)
		defer br.Close()
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert wallet transaction for %s: %w", holder.CleanerID, err)
		}
		ct, err := br.Exec()
		if err != nil {
			return fmt.Errorf("failed to update wallet balance for %s: %w", holder.CleanerID, err)
		}
		if ct.RowsAffected() == 0 {
			return fmt.Errorf("%w: wallet %s disappeared during deposit", apperrors.ErrNotFound, walletID)
		}

		txn = mapping.ToDomainWalletTransaction(model)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// lockWallet ensures the holder has a wallet and locks its row.
func (r *PgxWalletRepository) lockWallet(ctx context.Context, holderID string) (string, error) {
	now := r.clock.Now()
	_, err := r.db(ctx).Exec(ctx, `
		INSERT INTO wallets (wallet_id, holder_id, balance, created_at, updated_at)
		VALUES ($1, $2, 0, $3, $3)
		ON CONFLICT (holder_id) DO NOTHING;
	`, uuid.NewString(), holderID, now)
	if err != nil {
		return "", fmt.Errorf("failed to create wallet for %s: %w", holderID, err)
	}

	var walletID string
	err = r.db(ctx).QueryRow(ctx, `
		SELECT wallet_id FROM wallets WHERE holder_id = $1 FOR UPDATE;
	`, holderID).Scan(&walletID)
	if err != nil {
		return "", notFound(err, "wallet of %s", holderID)
	}
	return walletID, nil
}
