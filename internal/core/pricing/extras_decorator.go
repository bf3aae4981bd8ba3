package pricing

import (
	"fmt"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
)

// ExtrasDecorator adds the booking's extra charges on top of the wrapped calculator's result.
type ExtrasDecorator struct {
	inner Calculator
}

// NewExtrasDecorator wraps inner.
func NewExtrasDecorator(inner Calculator) *ExtrasDecorator {
	return &ExtrasDecorator{inner: inner}
}

// WithExtras is the Decorator form of NewExtrasDecorator, for use with Chain.
func WithExtras() Decorator {
	return func(inner Calculator) Calculator { return NewExtrasDecorator(inner) }
}

var _ Calculator = (*ExtrasDecorator)(nil)

func (d *ExtrasDecorator) Calculate(input domain.PricingInput) (domain.PriceBreakdown, error) {
	prev, err := d.inner.Calculate(input)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}

	sum := domain.ZeroMoney(prev.Currency)
	for _, extra := range input.Extras {
		if extra.Amount == nil {
			continue
		}
		sum, err = sum.Plus(*extra.Amount, domain.RoundHalfUp)
		if err != nil {
			return domain.PriceBreakdown{}, fmt.Errorf("adding extra %s: %w", extra.ExtraID, err)
		}
	}

	extras, err := prev.ExtrasAmount.Plus(sum, domain.RoundHalfUp)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	total, err := prev.TotalAmount.Plus(sum, domain.RoundHalfUp)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	return domain.NewPriceBreakdown(prev.SelectedAmount, extras, prev.DiscountAmount, total), nil
}
