package models

import (
	"github.com/shopspring/decimal"
)

// Service represents a bookable cleaning service.
type Service struct {
	ServiceID     string              `db:"service_id"`
	Name          string              `db:"name"`
	PricingMode   string              `db:"pricing_mode"`    // area_range or price_per_meter
	PricePerMeter decimal.NullDecimal `db:"price_per_meter"` // Nullable
	MinArea       decimal.NullDecimal `db:"min_area"`        // Nullable
	IsActive      bool                `db:"is_active"`
	AuditFields
}

// PricingTier represents an area band of an area-range service.
type PricingTier struct {
	TierID    string              `db:"tier_id"`
	ServiceID string              `db:"service_id"`
	MinArea   decimal.NullDecimal `db:"min_area"` // Nullable
	MaxArea   decimal.NullDecimal `db:"max_area"` // Nullable
	Amount    decimal.NullDecimal `db:"amount"`   // Nullable
}

// Extra represents an optional add-on charge.
type Extra struct {
	ExtraID  string              `db:"extra_id"`
	Name     string              `db:"name"`
	Amount   decimal.NullDecimal `db:"amount"` // Nullable
	Currency string              `db:"currency"`
}
