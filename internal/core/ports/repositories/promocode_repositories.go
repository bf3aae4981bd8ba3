package repositories

import (
	"context"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
)

// PromocodeReader defines lookups of promotional codes.
type PromocodeReader interface {
	// FindPromocodeByCode retrieves a promocode by its exact, already normalized code.
	// With forUpdate the row is locked until the transaction in ctx ends; without a
	// transaction in ctx the call fails with apperrors.ErrLockOutsideTransaction.
	// Returns apperrors.ErrNotFound when no code matches.
	FindPromocodeByCode(ctx context.Context, code string, forUpdate bool) (*domain.Promocode, error)
}

// PromocodeUsageCounter counts how often a promocode has been consumed.
type PromocodeUsageCounter interface {
	// CountActiveBookingsByPromocode counts bookings referencing the promocode whose
	// status is not cancelled.
	CountActiveBookingsByPromocode(ctx context.Context, promocodeID string) (int, error)
}

// PromocodeRepositoryFacade combines all promocode-related repository interfaces
type PromocodeRepositoryFacade interface {
	PromocodeReader
	PromocodeUsageCounter
}
