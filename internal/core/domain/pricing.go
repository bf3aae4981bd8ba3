package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PricingMode selects which pricing strategy a cleaning service uses.
type PricingMode string

const (
	AreaRange     PricingMode = "area_range"
	PricePerMeter PricingMode = "price_per_meter"
)

// Service is the priced cleaning service as stored by the catalog.
type Service struct {
	ServiceID     string           `json:"serviceID"`     // Primary Key
	Name          string           `json:"name"`          // Display name
	PricingMode   PricingMode      `json:"pricingMode"`   // area_range or price_per_meter
	PricePerMeter *decimal.Decimal `json:"pricePerMeter"` // Nullable; required for price_per_meter
	MinArea       *decimal.Decimal `json:"minArea"`       // Nullable; lower bound on the booked area in sqm
	IsActive      bool             `json:"isActive"`
	AuditFields
}

// UsesAreaRange reports whether the service is priced from a discrete tier.
func (s Service) UsesAreaRange() bool {
	return s.PricingMode == AreaRange
}

// PricingTier is a pre-priced area band of an area-range service.
type PricingTier struct {
	TierID    string           `json:"tierID"`    // Primary Key
	ServiceID string           `json:"serviceID"` // FK -> services.service_id
	MinArea   *decimal.Decimal `json:"minArea"`   // Nullable; inclusive lower bound
	MaxArea   *decimal.Decimal `json:"maxArea"`   // Nullable; inclusive upper bound
	Amount    *decimal.Decimal `json:"amount"`    // Nullable at rest; required for pricing
}

// Covers reports whether area falls inside the tier's bounds. Nil bounds are open.
func (t PricingTier) Covers(area decimal.Decimal) bool {
	if t.MinArea != nil && area.LessThan(*t.MinArea) {
		return false
	}
	if t.MaxArea != nil && area.GreaterThan(*t.MaxArea) {
		return false
	}
	return true
}

// Extra is an additional charge line attached to a booking.
type Extra struct {
	ExtraID string `json:"extraID"`
	Name    string `json:"name"`
	Amount  *Money `json:"-"` // Nil lines are skipped when summing
}

// PricingInput is the immutable snapshot priced by the calculator chain.
// Build it with NewPricingInput; calculators never modify it.
type PricingInput struct {
	Service      Service
	SelectedTier *PricingTier
	Area         *decimal.Decimal
	Extras       []Extra
	Promocode    *Promocode
	Currency     string
}

// NewPricingInput copies extras and defaults the currency to DefaultCurrency.
func NewPricingInput(service Service, tier *PricingTier, area *decimal.Decimal, extras []Extra, promocode *Promocode, currency string) PricingInput {
	code := NormalizeCurrency(currency)
	if code == "" {
		code = DefaultCurrency
	}
	copied := make([]Extra, len(extras))
	copy(copied, extras)
	return PricingInput{
		Service:      service,
		SelectedTier: tier,
		Area:         area,
		Extras:       copied,
		Promocode:    promocode,
		Currency:     code,
	}
}

// PriceBreakdown is the itemised result of one calculator stage.
type PriceBreakdown struct {
	SelectedAmount Money  `json:"-"`
	ExtrasAmount   Money  `json:"-"`
	DiscountAmount Money  `json:"-"`
	TotalAmount    Money  `json:"-"`
	Currency       string `json:"currency"`
}

// NewPriceBreakdown builds a breakdown whose currency is taken from the total.
func NewPriceBreakdown(selected, extras, discount, total Money) PriceBreakdown {
	return PriceBreakdown{
		SelectedAmount: selected,
		ExtrasAmount:   extras,
		DiscountAmount: discount,
		TotalAmount:    total,
		Currency:       total.Currency(),
	}
}

// CheckTotal verifies total == selected + extras - discount.
func (b PriceBreakdown) CheckTotal() error {
	subtotal, err := b.SelectedAmount.Plus(b.ExtrasAmount, RoundHalfUp)
	if err != nil {
		return err
	}
	expected, err := subtotal.Minus(b.DiscountAmount, RoundHalfUp)
	if err != nil {
		return err
	}
	if !expected.Equals(b.TotalAmount) {
		return fmt.Errorf("breakdown total %s does not match %s", b.TotalAmount, expected)
	}
	return nil
}
