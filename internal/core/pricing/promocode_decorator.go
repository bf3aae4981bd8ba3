package pricing

import (
	"fmt"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PromocodeDecorator applies the attached promocode's capped percentage discount
// to the wrapped calculator's running total. Without a promocode it is a no-op.
type PromocodeDecorator struct {
	inner Calculator
}

// NewPromocodeDecorator wraps inner.
func NewPromocodeDecorator(inner Calculator) *PromocodeDecorator {
	return &PromocodeDecorator{inner: inner}
}

// WithPromocode is the Decorator form of NewPromocodeDecorator, for use with Chain.
func WithPromocode() Decorator {
	return func(inner Calculator) Calculator { return NewPromocodeDecorator(inner) }
}

var _ Calculator = (*PromocodeDecorator)(nil)

func (d *PromocodeDecorator) Calculate(input domain.PricingInput) (domain.PriceBreakdown, error) {
	prev, err := d.inner.Calculate(input)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	promo := input.Promocode
	if promo == nil {
		return prev, nil
	}

	subtotal := prev.TotalAmount
	if code := domain.NormalizeCurrency(promo.Currency); code != subtotal.Currency() {
		return domain.PriceBreakdown{}, fmt.Errorf("%w: promocode %s is in %s, subtotal is in %s",
			domain.ErrCurrencyMismatch, promo.Code, code, subtotal.Currency())
	}

	discount, err := Discount(subtotal, promo)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}

	total, err := subtotal.Minus(discount, domain.RoundHalfUp)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	// Additive so that several discount stages can be chained.
	discounts, err := prev.DiscountAmount.Plus(discount, domain.RoundHalfUp)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	return domain.NewPriceBreakdown(prev.SelectedAmount, prev.ExtrasAmount, discounts, total), nil
}

// Discount computes subtotal * percentage / 100, rounding after the multiply and again
// after the divide, then clamps it to the promocode cap and to the subtotal itself.
// A negative result, from a negative percentage, is floored at zero.
func Discount(subtotal domain.Money, promo *domain.Promocode) (domain.Money, error) {
	scaled, err := subtotal.MultipliedBy(promo.DiscountPercentage, domain.RoundHalfUp)
	if err != nil {
		return domain.Money{}, err
	}
	discount, err := scaled.DividedBy(hundred, domain.RoundHalfUp)
	if err != nil {
		return domain.Money{}, err
	}

	if promo.MaxDiscountAmount != nil {
		discount, err = domain.MinMoney(discount, *promo.MaxDiscountAmount)
		if err != nil {
			return domain.Money{}, err
		}
	}
	discount, err = domain.MinMoney(discount, subtotal)
	if err != nil {
		return domain.Money{}, err
	}
	if discount.IsNegative() {
		return domain.ZeroMoney(discount.Currency()), nil
	}
	return discount, nil
}
