package repositories

import (
	"context"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogReader defines read operations for the priced service catalog.
type CatalogReader interface {
	// FindServiceByID retrieves a service. Returns apperrors.ErrNotFound when missing.
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)

	// FindTierByID retrieves a pricing tier belonging to the given service.
	FindTierByID(ctx context.Context, serviceID, tierID string) (*domain.PricingTier, error)

	// FindTierForArea retrieves the tier of an area-range service whose bounds cover area.
	FindTierForArea(ctx context.Context, serviceID string, area decimal.Decimal) (*domain.PricingTier, error)

	// FindExtrasByIDs retrieves extra charges in the order of extraIDs.
	FindExtrasByIDs(ctx context.Context, extraIDs []string) ([]domain.Extra, error)
}
