package pricing_test

import (
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Helper functions
func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func moneyPtr(amount, currency string) *domain.Money {
	m := domain.MustMoney(amount, currency)
	return &m
}

func tierService() domain.Service {
	return domain.Service{ServiceID: "svc-tier", Name: "Standard cleaning", PricingMode: domain.AreaRange}
}

func perMeterService(rate, minArea string) domain.Service {
	svc := domain.Service{ServiceID: "svc-sqm", Name: "Deep cleaning", PricingMode: domain.PricePerMeter}
	if rate != "" {
		svc.PricePerMeter = decimalPtr(rate)
	}
	if minArea != "" {
		svc.MinArea = decimalPtr(minArea)
	}
	return svc
}

func tier(amount string) *domain.PricingTier {
	return &domain.PricingTier{TierID: "tier-1", ServiceID: "svc-tier", Amount: decimalPtr(amount)}
}

func extra(id, amount, currency string) domain.Extra {
	return domain.Extra{ExtraID: id, Name: id, Amount: moneyPtr(amount, currency)}
}

func promocode(percentage string, maxDiscount *domain.Money) *domain.Promocode {
	return &domain.Promocode{
		PromocodeID:        "promo-1",
		Code:               "SPRING10",
		DiscountPercentage: decimal.RequireFromString(percentage),
		MaxDiscountAmount:  maxDiscount,
		Currency:           "HUF",
	}
}
