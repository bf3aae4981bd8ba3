package services

import (
	"context"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
)

// PayoutCalculatorSvc derives the amount owed to a cleaner for a cash-collected booking.
type PayoutCalculatorSvc interface {
	// CalculatePayoutAmount returns the booking amount minus the platform fee as a
	// two-decimal string, floored at "0.00".
	CalculatePayoutAmount(booking domain.Booking) (string, error)
}

// SettlerSvc credits cleaners for cash-on-delivery bookings.
type SettlerSvc interface {
	// Settle deposits the payout into the cleaner's wallet. It is not idempotent:
	// callers must ensure it runs at most once per booking.
	Settle(ctx context.Context, booking domain.Booking, cleaner domain.Cleaner) (*domain.Settlement, error)

	// SettleBooking loads and locks the booking, checks it is a completed, unsettled
	// cash booking, settles it and marks it settled, all in one transaction.
	SettleBooking(ctx context.Context, bookingID, cleanerID string) (*domain.Settlement, error)
}

// SettlementSvcFacade combines all settlement-related service interfaces
type SettlementSvcFacade interface {
	PayoutCalculatorSvc
	SettlerSvc
}
