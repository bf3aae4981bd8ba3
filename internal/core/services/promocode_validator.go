package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cleanbook_engine/internal/apperrors"
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/cleanbook_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleanbook_engine/internal/core/ports/services"
	"github.com/SscSPs/cleanbook_engine/internal/pkg/clock"
)

type promocodeValidator struct {
	BaseService
	promocodeRepo portsrepo.PromocodeRepositoryFacade
	clock         clock.Clock
}

// PromocodeValidatorOption is a functional option for configuring the promocode validator
type PromocodeValidatorOption func(*promocodeValidator)

// WithValidatorClock overrides the time source used for the validity window.
func WithValidatorClock(c clock.Clock) PromocodeValidatorOption {
	return func(s *promocodeValidator) {
		s.clock = c
	}
}

// NewPromocodeValidator creates a new promocode validator with the provided options
func NewPromocodeValidator(repo portsrepo.PromocodeRepositoryFacade, options ...PromocodeValidatorOption) portssvc.PromocodeSvcFacade {
	svc := &promocodeValidator{
		promocodeRepo: repo,
		clock:         clock.NewRealClock(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PromocodeSvcFacade = (*promocodeValidator)(nil)

// NormalizePromocode trims and upper-cases a user-entered code.
func NormalizePromocode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *promocodeValidator) Validate(ctx context.Context, code string, lockForUpdate bool) (domain.PromocodeValidationResult, error) {
	normalized := NormalizePromocode(code)
	if normalized == "" {
		return domain.InvalidPromocode(domain.PromocodeNotFound), nil
	}

	promo, err := s.promocodeRepo.FindPromocodeByCode(ctx, normalized, lockForUpdate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Promocode not found", slog.String("code", normalized))
			return domain.InvalidPromocode(domain.PromocodeNotFound), nil
		}
		s.LogError(ctx, err, "Failed to look up promocode",
			slog.String("code", normalized),
			slog.Bool("lock_for_update", lockForUpdate))
		return domain.PromocodeValidationResult{}, fmt.Errorf("failed to look up promocode %s: %w", normalized, err)
	}

	if !promo.IsActiveAt(s.clock.Now()) {
		return domain.InvalidPromocode(domain.PromocodeInactivePeriod), nil
	}

	if promo.MaxGlobalUses != nil {
		used, err := s.promocodeRepo.CountActiveBookingsByPromocode(ctx, promo.PromocodeID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count promocode usage",
				slog.String("promocode_id", promo.PromocodeID))
			return domain.PromocodeValidationResult{}, fmt.Errorf("failed to count usage of promocode %s: %w", normalized, err)
		}
		if used >= *promo.MaxGlobalUses {
			s.LogDebug(ctx, "Promocode usage limit reached",
				slog.String("promocode_id", promo.PromocodeID),
				slog.Int("used", used),
				slog.Int("max_global_uses", *promo.MaxGlobalUses))
			return domain.InvalidPromocode(domain.PromocodeUsageLimitReached), nil
		}
	}

	return domain.ValidPromocode(promo), nil
}
