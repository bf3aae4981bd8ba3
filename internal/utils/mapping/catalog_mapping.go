package mapping

import (
	"fmt"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	"github.com/SscSPs/cleanbook_engine/internal/models"
	"github.com/shopspring/decimal"
)

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// ToDomainService converts a models.Service to domain.Service
func ToDomainService(m models.Service) domain.Service {
	return domain.Service{
		ServiceID:     m.ServiceID,
		Name:          m.Name,
		PricingMode:   domain.PricingMode(m.PricingMode),
		PricePerMeter: nullDecimalPtr(m.PricePerMeter),
		MinArea:       nullDecimalPtr(m.MinArea),
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPricingTier converts a models.PricingTier to domain.PricingTier
func ToDomainPricingTier(m models.PricingTier) domain.PricingTier {
	return domain.PricingTier{
		TierID:    m.TierID,
		ServiceID: m.ServiceID,
		MinArea:   nullDecimalPtr(m.MinArea),
		MaxArea:   nullDecimalPtr(m.MaxArea),
		Amount:    nullDecimalPtr(m.Amount),
	}
}

// ToDomainExtra converts a models.Extra to domain.Extra. An extra without an
// amount maps to a nil Amount and is skipped by pricing.
func ToDomainExtra(m models.Extra) (domain.Extra, error) {
	extra := domain.Extra{ExtraID: m.ExtraID, Name: m.Name}
	if m.Amount.Valid {
		amount, err := domain.NewMoney(m.Amount.Decimal, m.Currency)
		if err != nil {
			return domain.Extra{}, fmt.Errorf("extra %s: %w", m.ExtraID, err)
		}
		extra.Amount = &amount
	}
	return extra, nil
}
