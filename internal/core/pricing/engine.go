package pricing

import (
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
)

// Engine is the single entry point for pricing a booking. It holds no state between
// calls and is safe for concurrent use.
type Engine struct {
	calculator Calculator
}

// EngineOption is a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithCalculator replaces the default chain. Intended for test doubles.
func WithCalculator(c Calculator) EngineOption {
	return func(e *Engine) {
		e.calculator = c
	}
}

// DefaultChain builds Promocode -> Extras -> Base: the base price is computed first,
// extras are added, and the promocode discount applies to the extras-inclusive subtotal.
func DefaultChain() Calculator {
	return Chain(NewBaseCalculator(), WithPromocode(), WithExtras())
}

// NewEngine creates an Engine wired with DefaultChain unless overridden.
func NewEngine(options ...EngineOption) *Engine {
	e := &Engine{}
	for _, option := range options {
		option(e)
	}
	if e.calculator == nil {
		e.calculator = DefaultChain()
	}
	return e
}

var _ Calculator = (*Engine)(nil)

// Calculate prices input. Errors wrap apperrors.ErrInvalidInput or domain.ErrCurrencyMismatch.
func (e *Engine) Calculate(input domain.PricingInput) (domain.PriceBreakdown, error) {
	return e.calculator.Calculate(input)
}
