package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cleanbook_engine/internal/apperrors"
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/cleanbook_engine/internal/core/ports/repositories"
	"github.com/SscSPs/cleanbook_engine/internal/models"
	"github.com/SscSPs/cleanbook_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCatalogRepository struct {
	BaseRepository
}

// newPgxCatalogRepository creates a new repository for services, tiers and extras.
func newPgxCatalogRepository(pool *pgxpool.Pool) *PgxCatalogRepository {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogReader = (*PgxCatalogRepository)(nil)

// orderExtras returns one extra per requested ID, in request order.
func orderExtras(requested []string, found map[string]domain.Extra) ([]domain.Extra, error) {
	extras := make([]domain.Extra, 0, len(requested))
	for _, id := range requested {
		extra, ok := found[id]
		if !ok {
			return nil, fmt.Errorf("%w: extra %s", apperrors.ErrNotFound, id)
		}
		extras = append(extras, extra)
	}
	return extras, nil
}

const selectTierColumns = `SELECT tier_id, service_id, min_area, max_area, amount FROM pricing_tiers`

func (r *PgxCatalogRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	query := `
		SELECT service_id, name, pricing_mode, price_per_meter, min_area, is_active, created_at, updated_at
		FROM services
		WHERE service_id = $1;
	`
	var m models.Service
	err := r.db(ctx).QueryRow(ctx, query, serviceID).Scan(
		&m.ServiceID,
		&m.Name,
		&m.PricingMode,
		&m.PricePerMeter,
		&m.MinArea,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "service %s", serviceID)
	}
	svc := mapping.ToDomainService(m)
	return &svc, nil
}

func (r *PgxCatalogRepository) FindTierByID(ctx context.Context, serviceID, tierID string) (*domain.PricingTier, error) {
	query := selectTierColumns + `
		WHERE tier_id = $1 AND service_id = $2;
	`
	var m models.PricingTier
	err := r.db(ctx).QueryRow(ctx, query, tierID, serviceID).Scan(&m.TierID, &m.ServiceID, &m.MinArea, &m.MaxArea, &m.Amount)
	if err != nil {
		return nil, notFound(err, "tier %s of service %s", tierID, serviceID)
	}
	tier := mapping.ToDomainPricingTier(m)
	return &tier, nil
}

// FindTierForArea picks the narrowest covering tier when bands overlap.
func (r *PgxCatalogRepository) FindTierForArea(ctx context.Context, serviceID string, area decimal.Decimal) (*domain.PricingTier, error) {
	query := selectTierColumns + `
		WHERE service_id = $1
		  AND (min_area IS NULL OR min_area <= $2)
		  AND (max_area IS NULL OR max_area >= $2)
		ORDER BY min_area DESC NULLS LAST, max_area ASC NULLS LAST
		LIMIT 1;
	`
	var m models.PricingTier
	err := r.db(ctx).QueryRow(ctx, query, serviceID, area).Scan(&m.TierID, &m.ServiceID, &m.MinArea, &m.MaxArea, &m.Amount)
	if err != nil {
		return nil, notFound(err, "tier of service %s for area %s", serviceID, area.String())
	}
	tier := mapping.ToDomainPricingTier(m)
	return &tier, nil
}

func (r *PgxCatalogRepository) FindExtrasByIDs(ctx context.Context, extraIDs []string) ([]domain.Extra, error) {
	if len(extraIDs) == 0 {
		return []domain.Extra{}, nil
	}

	query := `
		SELECT extra_id, name, amount, currency
		FROM extras
		WHERE extra_id = ANY($1);
	`
	rows, err := r.db(ctx).Query(ctx, query, extraIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query extras by IDs: %w", err)
	}
	defer rows.Close()

	found := make(map[string]domain.Extra, len(extraIDs))
	for rows.Next() {
		var m models.Extra
		if err := rows.Scan(&m.ExtraID, &m.Name, &m.Amount, &m.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan extra row: %w", err)
		}
		extra, err := mapping.ToDomainExtra(m)
		if err != nil {
			return nil, err
		}
		found[extra.ExtraID] = extra
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating extra rows: %w", err)
	}

	return orderExtras(extraIDs, found)
}
