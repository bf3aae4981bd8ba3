package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
)

// BookingReader defines read operations for booking data
type BookingReader interface {
	// FindBookingByID retrieves a booking. With forUpdate the row is locked for the
	// lifetime of the transaction in ctx.
	FindBookingByID(ctx context.Context, bookingID string, forUpdate bool) (*domain.Booking, error)
}

// BookingWriter defines write operations for booking data
type BookingWriter interface {
	// MarkCodSettled records that the booking's cash-on-delivery payout was credited.
	MarkCodSettled(ctx context.Context, bookingID string, settledAt time.Time) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}

// CleanerReader defines read operations for cleaner data
type CleanerReader interface {
	FindCleanerByID(ctx context.Context, cleanerID string) (*domain.Cleaner, error)
}
