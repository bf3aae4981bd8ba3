package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promocode is a percentage discount code with an optional cap, validity window and usage limit.
type Promocode struct {
	PromocodeID        string          `json:"promocodeID"`        // Primary Key
	Code               string          `json:"code"`               // Stored upper-cased, unique
	DiscountPercentage decimal.Decimal `json:"discountPercentage"` // 0-100
	MaxDiscountAmount  *Money          `json:"-"`                  // Nullable cap, in Currency
	Currency           string          `json:"currency"`           // Must match the priced subtotal
	StartsAt           *time.Time      `json:"startsAt"`           // Nullable; unbounded when nil
	ExpiresAt          *time.Time      `json:"expiresAt"`          // Nullable; unbounded when nil
	MaxGlobalUses      *int            `json:"maxGlobalUses"`      // Nullable; no cap when nil
	AuditFields
}

// IsActiveAt reports whether t lies inside [StartsAt, ExpiresAt]. Both ends are inclusive.
func (p Promocode) IsActiveAt(t time.Time) bool {
	if p.StartsAt != nil && t.Before(*p.StartsAt) {
		return false
	}
	if p.ExpiresAt != nil && t.After(*p.ExpiresAt) {
		return false
	}
	return true
}

// PromocodeInvalidReason explains why a code cannot be used.
type PromocodeInvalidReason string

const (
	PromocodeNotFound          PromocodeInvalidReason = "not_found"
	PromocodeInactivePeriod    PromocodeInvalidReason = "inactive_period"
	PromocodeUsageLimitReached PromocodeInvalidReason = "usage_limit_reached"
)

// PromocodeValidationResult carries either a usable promocode or the reason it was rejected.
// Reason is set iff Valid is false; Promocode is set iff Valid is true.
type PromocodeValidationResult struct {
	Valid     bool                    `json:"valid"`
	Reason    *PromocodeInvalidReason `json:"reason,omitempty"`
	Promocode *Promocode              `json:"promocode,omitempty"`
}

// ValidPromocode builds an accepting result.
func ValidPromocode(p *Promocode) PromocodeValidationResult {
	return PromocodeValidationResult{Valid: true, Promocode: p}
}

// InvalidPromocode builds a rejecting result.
func InvalidPromocode(reason PromocodeInvalidReason) PromocodeValidationResult {
	return PromocodeValidationResult{Valid: false, Reason: &reason}
}
