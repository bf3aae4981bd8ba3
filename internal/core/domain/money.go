package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MinorUnitScale is the number of fractional digits every Money amount is kept at.
const MinorUnitScale int32 = 2

// DefaultCurrency is used when a pricing request does not name a currency.
const DefaultCurrency = "HUF"

var (
	ErrCurrencyMismatch  = errors.New("money currencies do not match")
	ErrInvalidAmount     = errors.New("invalid money amount")
	ErrDivisionByZero    = errors.New("money division by zero")
	ErrRoundingNecessary = errors.New("rounding necessary")
	ErrUnknownRounding   = errors.New("unknown rounding mode")
)

// RoundingMode selects how a Money operation brings its result back to MinorUnitScale.
type RoundingMode int

const (
	// RoundHalfUp rounds to nearest, ties away from zero.
	RoundHalfUp RoundingMode = iota
	// RoundUnnecessary asserts the exact result already fits the scale and fails otherwise.
	RoundUnnecessary
)

// Money is an exact decimal amount in a single ISO 4217 currency.
// Values are immutable; every operation returns a new Money.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney builds Money from a decimal, rounding half-up to the minor unit.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	code := NormalizeCurrency(currency)
	if code == "" {
		return Money{}, fmt.Errorf("%w: currency is required", ErrInvalidAmount)
	}
	return Money{amount: amount.Round(MinorUnitScale), currency: code}, nil
}

// NewMoneyFromString parses a decimal string such as "3200.00".
func NewMoneyFromString(amount string, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, amount, err)
	}
	return NewMoney(d, currency)
}

// MustMoney is NewMoneyFromString that panics on error. Intended for fixtures and constants.
func MustMoney(amount string, currency string) Money {
	m, err := NewMoneyFromString(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{amount: decimal.Zero.Round(MinorUnitScale), currency: NormalizeCurrency(currency)}
}

// NormalizeCurrency trims and upper-cases an ISO 4217 code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the upper-cased currency code.
func (m Money) Currency() string { return m.currency }

// String renders the amount with exactly two fractional digits, e.g. "3200.00".
func (m Money) String() string {
	return m.amount.StringFixed(MinorUnitScale)
}

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

func (m Money) checkCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}

func round(d decimal.Decimal, mode RoundingMode) (decimal.Decimal, error) {
	switch mode {
	case RoundHalfUp:
		return d.Round(MinorUnitScale), nil
	case RoundUnnecessary:
		r := d.Round(MinorUnitScale)
		if !r.Equal(d) {
			return decimal.Decimal{}, fmt.Errorf("%w: %s does not fit %d decimals", ErrRoundingNecessary, d.String(), MinorUnitScale)
		}
		return r, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %d", ErrUnknownRounding, mode)
	}
}

// Plus adds other to m. Both must share a currency.
func (m Money) Plus(other Money, mode RoundingMode) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	sum, err := round(m.amount.Add(other.amount), mode)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: sum, currency: m.currency}, nil
}

// Minus subtracts other from m. Both must share a currency.
func (m Money) Minus(other Money, mode RoundingMode) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	diff, err := round(m.amount.Sub(other.amount), mode)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: diff, currency: m.currency}, nil
}

// MultipliedBy scales m by factor and rounds the product immediately.
func (m Money) MultipliedBy(factor decimal.Decimal, mode RoundingMode) (Money, error) {
	product, err := round(m.amount.Mul(factor), mode)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: product, currency: m.currency}, nil
}

// DividedBy divides m by divisor and rounds the quotient immediately.
func (m Money) DividedBy(divisor decimal.Decimal, mode RoundingMode) (Money, error) {
	if divisor.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	quotient := m.amount.DivRound(divisor, MinorUnitScale)
	switch mode {
	case RoundHalfUp:
	case RoundUnnecessary:
		if !quotient.Mul(divisor).Equal(m.amount) {
			return Money{}, fmt.Errorf("%w: %s / %s does not fit %d decimals", ErrRoundingNecessary, m.amount.String(), divisor.String(), MinorUnitScale)
		}
	default:
		return Money{}, fmt.Errorf("%w: %d", ErrUnknownRounding, mode)
	}
	return Money{amount: quotient, currency: m.currency}, nil
}

// Compare returns -1, 0 or 1. Currencies must match.
func (m Money) Compare(other Money) (int, error) {
	if err := m.checkCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// Equals reports whether both amount and currency are equal.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) IsGreaterThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c > 0, err
}

func (m Money) IsLessThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c < 0, err
}

// MinMoney returns the smaller of a and b.
func MinMoney(a, b Money) (Money, error) {
	less, err := b.IsLessThan(a)
	if err != nil {
		return Money{}, err
	}
	if less {
		return b, nil
	}
	return a, nil
}
