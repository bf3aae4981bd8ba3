package mapping

import (
	"fmt"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	"github.com/SscSPs/cleanbook_engine/internal/models"
)

// ToDomainPromocode converts a models.Promocode to domain.Promocode
func ToDomainPromocode(m models.Promocode) (domain.Promocode, error) {
	p := domain.Promocode{
		PromocodeID:        m.PromocodeID,
		Code:               m.Code,
		DiscountPercentage: m.DiscountPercentage,
		Currency:           domain.NormalizeCurrency(m.Currency),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
	if m.MaxDiscountAmount.Valid {
		limit, err := domain.NewMoney(m.MaxDiscountAmount.Decimal, m.Currency)
		if err != nil {
			return domain.Promocode{}, fmt.Errorf("promocode %s max discount: %w", m.PromocodeID, err)
		}
		p.MaxDiscountAmount = &limit
	}
	if m.StartsAt.Valid {
		startsAt := m.StartsAt.Time
		p.StartsAt = &startsAt
	}
	if m.ExpiresAt.Valid {
		expiresAt := m.ExpiresAt.Time
		p.ExpiresAt = &expiresAt
	}
	if m.MaxGlobalUses.Valid {
		maxUses := int(m.MaxGlobalUses.Int32)
		p.MaxGlobalUses = &maxUses
	}
	return p, nil
}
