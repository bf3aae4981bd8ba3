package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Promocode represents a stored discount code.
type Promocode struct {
	PromocodeID        string              `db:"promocode_id"`
	Code               string              `db:"code"`
	DiscountPercentage decimal.Decimal     `db:"discount_percentage"`
	MaxDiscountAmount  decimal.NullDecimal `db:"max_discount_amount"` // Nullable
	Currency           string              `db:"currency"`
	StartsAt           sql.NullTime        `db:"starts_at"`       // Nullable
	ExpiresAt          sql.NullTime        `db:"expires_at"`      // Nullable
	MaxGlobalUses      sql.NullInt32       `db:"max_global_uses"` // Nullable
	AuditFields
}
