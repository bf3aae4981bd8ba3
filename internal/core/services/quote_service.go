package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cleanbook_engine/internal/apperrors"
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/cleanbook_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleanbook_engine/internal/core/ports/services"
	"github.com/SscSPs/cleanbook_engine/internal/core/pricing"
	"github.com/SscSPs/cleanbook_engine/internal/dto"
	"github.com/go-playground/validator/v10"
)

type quoteService struct {
	BaseService
	catalog         portsrepo.CatalogReader
	promocodes      portssvc.PromocodeValidatorSvc
	engine          *pricing.Engine
	defaultCurrency string
	validate        *validator.Validate
}

// QuoteOption is a functional option for configuring the quote service
type QuoteOption func(*quoteService)

// WithPricingEngine replaces the default pricing engine.
func WithPricingEngine(engine *pricing.Engine) QuoteOption {
	return func(s *quoteService) {
		s.engine = engine
	}
}

// WithDefaultCurrency sets the currency used when a request names none.
func WithDefaultCurrency(currency string) QuoteOption {
	return func(s *quoteService) {
		s.defaultCurrency = currency
	}
}

// NewQuoteService creates a new quote service with the provided options
func NewQuoteService(catalog portsrepo.CatalogReader, promocodes portssvc.PromocodeValidatorSvc, options ...QuoteOption) portssvc.QuoteSvc {
	svc := &quoteService{
		catalog:         catalog,
		promocodes:      promocodes,
		engine:          pricing.NewEngine(),
		defaultCurrency: domain.DefaultCurrency,
		validate:        validator.New(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.QuoteSvc = (*quoteService)(nil)

func (s *quoteService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	service, err := s.catalog.FindServiceByID(ctx, req.ServiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find service", slog.String("service_id", req.ServiceID))
		return nil, fmt.Errorf("failed to find service %s: %w", req.ServiceID, err)
	}
	if !service.IsActive {
		return nil, fmt.Errorf("%w: service %s is not active", apperrors.ErrValidation, req.ServiceID)
	}

	tier, err := s.resolveTier(ctx, service, req)
	if err != nil {
		return nil, err
	}

	var extras []domain.Extra
	if len(req.ExtraIDs) > 0 {
		extras, err = s.catalog.FindExtrasByIDs(ctx, req.ExtraIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to find extras", slog.Any("extra_ids", req.ExtraIDs))
			return nil, fmt.Errorf("failed to find extras: %w", err)
		}
	}

	var promo *domain.Promocode
	if strings.TrimSpace(req.Promocode) != "" {
		result, err := s.promocodes.Validate(ctx, req.Promocode, false)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, fmt.Errorf("%w: promocode %s is %s", apperrors.ErrValidation, NormalizePromocode(req.Promocode), *result.Reason)
		}
		promo = result.Promocode
	}

	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}

	input := domain.NewPricingInput(*service, tier, req.Area, extras, promo, currency)
	breakdown, err := s.engine.Calculate(input)
	if err != nil {
		s.LogError(ctx, err, "Failed to price booking", slog.String("service_id", req.ServiceID))
		return nil, fmt.Errorf("failed to price service %s: %w", req.ServiceID, err)
	}

	s.LogDebug(ctx, "Booking priced",
		slog.String("service_id", req.ServiceID),
		slog.String("total", breakdown.TotalAmount.String()),
		slog.String("currency", breakdown.Currency))

	resp := dto.ToQuoteResponse(input, breakdown)
	return &resp, nil
}

// resolveTier picks the tier for area-range services, by ID when given, else by area.
// A nil tier is left for the base calculator to reject.
func (s *quoteService) resolveTier(ctx context.Context, service *domain.Service, req dto.QuoteRequest) (*domain.PricingTier, error) {
	if !service.UsesAreaRange() {
		return nil, nil
	}
	switch {
	case req.TierID != nil:
		tier, err := s.catalog.FindTierByID(ctx, service.ServiceID, *req.TierID)
		if err != nil {
			return nil, fmt.Errorf("failed to find tier %s: %w", *req.TierID, err)
		}
		return tier, nil
	case req.Area != nil:
		tier, err := s.catalog.FindTierForArea(ctx, service.ServiceID, *req.Area)
		if err != nil {
			return nil, fmt.Errorf("failed to find tier for area %s: %w", req.Area.String(), err)
		}
		return tier, nil
	}
	return nil, nil
}
