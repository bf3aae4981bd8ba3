package pricing

import (
	"fmt"

	"github.com/SscSPs/cleanbook_engine/internal/apperrors"
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
)

// BaseCalculator resolves the core service price from either the selected
// area-range tier or the price-per-meter rate.
type BaseCalculator struct{}

// NewBaseCalculator creates a BaseCalculator.
func NewBaseCalculator() *BaseCalculator {
	return &BaseCalculator{}
}

var _ Calculator = (*BaseCalculator)(nil)

// Calculate returns a breakdown with only the selected amount populated.
func (c *BaseCalculator) Calculate(input domain.PricingInput) (domain.PriceBreakdown, error) {
	var (
		selected domain.Money
		err      error
	)
	switch input.Service.PricingMode {
	case domain.AreaRange:
		selected, err = c.tierAmount(input)
	case domain.PricePerMeter:
		selected, err = c.perMeterAmount(input)
	default:
		err = fmt.Errorf("%w: service %s has unknown pricing mode %q",
			apperrors.ErrInvalidInput, input.Service.ServiceID, input.Service.PricingMode)
	}
	if err != nil {
		return domain.PriceBreakdown{}, err
	}

	zero := domain.ZeroMoney(selected.Currency())
	return domain.NewPriceBreakdown(selected, zero, zero, selected), nil
}

func (c *BaseCalculator) tierAmount(input domain.PricingInput) (domain.Money, error) {
	if input.SelectedTier == nil || input.SelectedTier.Amount == nil {
		return domain.Money{}, fmt.Errorf("%w: service %s requires a selected pricing tier with an amount",
			apperrors.ErrInvalidInput, input.Service.ServiceID)
	}
	return domain.NewMoney(*input.SelectedTier.Amount, input.Currency)
}

func (c *BaseCalculator) perMeterAmount(input domain.PricingInput) (domain.Money, error) {
	svc := input.Service
	if input.Area == nil || svc.PricePerMeter == nil {
		return domain.Money{}, fmt.Errorf("%w: service %s requires an area and a price per meter",
			apperrors.ErrInvalidInput, svc.ServiceID)
	}
	area := *input.Area
	if area.Sign() <= 0 {
		return domain.Money{}, fmt.Errorf("%w: area %s must be positive for service %s",
			apperrors.ErrInvalidInput, area.String(), svc.ServiceID)
	}
	if svc.MinArea != nil && area.LessThan(*svc.MinArea) {
		return domain.Money{}, fmt.Errorf("%w: area %s is below the minimum %s for service %s",
			apperrors.ErrInvalidInput, area.String(), svc.MinArea.String(), svc.ServiceID)
	}

	// rate is multiplied unrounded; only the product is brought to the minor unit
	return domain.NewMoney(svc.PricePerMeter.Mul(area), input.Currency)
}
