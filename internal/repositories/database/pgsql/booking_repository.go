package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/cleanbook_engine/internal/apperrors"
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/cleanbook_engine/internal/core/ports/repositories"
	"github.com/SscSPs/cleanbook_engine/internal/models"
	"github.com/SscSPs/cleanbook_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a new repository for booking and cleaner data.
func newPgxBookingRepository(pool *pgxpool.Pool) *PgxBookingRepository {
	return &PgxBookingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)
	_ portsrepo.CleanerReader           = (*PgxBookingRepository)(nil)
)

func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string, forUpdate bool) (*domain.Booking, error) {
	db, err := r.lockingDB(ctx, forUpdate)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, err)
	}

	// amount is read as text so the stored scale is preserved verbatim
	query := `
		SELECT booking_id, service_id, cleaner_id, promocode_id, status, payment_method,
		       amount::text, currency, cod_settled_at, created_at, updated_at
		FROM bookings
		WHERE booking_id = $1` + lockClause(forUpdate) + `;`

	var m models.Booking
	err = db.QueryRow(ctx, query, bookingID).Scan(
		&m.BookingID,
		&m.ServiceID,
		&m.CleanerID,
		&m.PromocodeID,
		&m.Status,
		&m.PaymentMethod,
		&m.Amount,
		&m.Currency,
		&m.CodSettledAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "booking %s", bookingID)
	}
	b := mapping.ToDomainBooking(m)
	return &b, nil
}

// MarkCodSettled stamps an unsettled booking. A booking that is missing or
// already stamped yields apperrors.ErrAlreadySettled.
func (r *PgxBookingRepository) MarkCodSettled(ctx context.Context, bookingID string, settledAt time.Time) error {
	query := `
		UPDATE bookings
		SET cod_settled_at = $2, updated_at = $2
		WHERE booking_id = $1 AND cod_settled_at IS NULL;
	`
	ct, err := r.db(ctx).Exec(ctx, query, bookingID, settledAt)
	if err != nil {
		return fmt.Errorf("failed to mark booking %s settled: %w", bookingID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", bookingID, apperrors.ErrAlreadySettled)
	}
	return nil
}

func (r *PgxBookingRepository) FindCleanerByID(ctx context.Context, cleanerID string) (*domain.Cleaner, error) {
	query := `SELECT cleaner_id, name FROM cleaners WHERE cleaner_id = $1;`

	var m models.Cleaner
	if err := r.db(ctx).QueryRow(ctx, query, cleanerID).Scan(&m.CleanerID, &m.Name); err != nil {
		return nil, notFound(err, "cleaner %s", cleanerID)
	}
	cleaner := mapping.ToDomainCleaner(m)
	return &cleaner, nil
}
