// Package pricing derives a booking's price breakdown through a chain of calculators:
// the base service price, then extra charges, then the promocode discount.
package pricing

import (
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
)

// Calculator prices a booking. Implementations must not modify the input and must
// return a breakdown satisfying total == selected + extras - discount.
type Calculator interface {
	Calculate(input domain.PricingInput) (domain.PriceBreakdown, error)
}

// CalculatorFunc adapts a plain function to the Calculator interface.
type CalculatorFunc func(input domain.PricingInput) (domain.PriceBreakdown, error)

// Calculate calls f(input).
func (f CalculatorFunc) Calculate(input domain.PricingInput) (domain.PriceBreakdown, error) {
	return f(input)
}

// Decorator wraps a Calculator with an additional pricing stage.
type Decorator func(inner Calculator) Calculator

// Chain applies decorators to base so the first decorator is outermost.
// Chain(base, a, b) runs base, then b, then a.
func Chain(base Calculator, decorators ...Decorator) Calculator {
	c := base
	for i := len(decorators) - 1; i >= 0; i-- {
		c = decorators[i](c)
	}
	return c
}
