package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/cleanbook_engine/internal/core/ports/repositories"
	"github.com/SscSPs/cleanbook_engine/internal/models"
	"github.com/SscSPs/cleanbook_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPromocodeRepository struct {
	BaseRepository
}

// newPgxPromocodeRepository creates a new repository for promocode data.
func newPgxPromocodeRepository(pool *pgxpool.Pool) *PgxPromocodeRepository {
	return &PgxPromocodeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PromocodeRepositoryFacade = (*PgxPromocodeRepository)(nil)

// FindPromocodeByCode matches code exactly; callers pass it already normalized.
// With forUpdate the row stays locked until the context's transaction ends.
func (r *PgxPromocodeRepository) FindPromocodeByCode(ctx context.Context, code string, forUpdate bool) (*domain.Promocode, error) {
	db, err := r.lockingDB(ctx, forUpdate)
	if err != nil {
		return nil, fmt.Errorf("promocode %s: %w", code, err)
	}

	query := `
		SELECT promocode_id, code, discount_percentage, max_discount_amount, currency,
		       starts_at, expires_at, max_global_uses, created_at, updated_at
		FROM promocodes
		WHERE code = $1` + lockClause(forUpdate) + `;`

	var m models.Promocode
	err = db.QueryRow(ctx, query, code).Scan(
		&m.PromocodeID,
		&m.Code,
		&m.DiscountPercentage,
		&m.MaxDiscountAmount,
		&m.Currency,
		&m.StartsAt,
		&m.ExpiresAt,
		&m.MaxGlobalUses,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "promocode %s", code)
	}

	p, err := mapping.ToDomainPromocode(m)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CountActiveBookingsByPromocode counts every booking that still holds the code, i.e. all but cancelled ones.
func (r *PgxPromocodeRepository) CountActiveBookingsByPromocode(ctx context.Context, promocodeID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE promocode_id = $1 AND status <> $2;
	`
	var count int
	if err := r.db(ctx).QueryRow(ctx, query, promocodeID, string(domain.BookingCancelled)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bookings for promocode %s: %w", promocodeID, err)
	}
	return count, nil
}
