package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/cleanbook_engine/internal/apperrors"
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	portssvc "github.com/SscSPs/cleanbook_engine/internal/core/ports/services"
	"github.com/SscSPs/cleanbook_engine/internal/core/services"
	"github.com/SscSPs/cleanbook_engine/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type QuoteServiceTestSuite struct {
	suite.Suite
	mockCatalog   *MockCatalogRepository
	mockValidator *MockPromocodeValidator
	service       portssvc.QuoteSvc
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.mockCatalog = new(MockCatalogRepository)
	suite.mockValidator = new(MockPromocodeValidator)
	suite.service = services.NewQuoteService(suite.mockCatalog, suite.mockValidator, services.WithDefaultCurrency("HUF"))
}

func tierService() *domain.Service {
	return &domain.Service{ServiceID: "svc-tier", Name: "Standard cleaning", PricingMode: domain.AreaRange, IsActive: true}
}

func perMeterService() *domain.Service {
	return &domain.Service{
		ServiceID:     "svc-sqm",
		Name:          "Deep cleaning",
		PricingMode:   domain.PricePerMeter,
		PricePerMeter: decimalPtr("120"),
		MinArea:       decimalPtr("20"),
		IsActive:      true,
	}
}

func standardTier() *domain.PricingTier {
	return &domain.PricingTier{
		TierID:    "tier-1",
		ServiceID: "svc-tier",
		MinArea:   decimalPtr("0"),
		MaxArea:   decimalPtr("50"),
		Amount:    decimalPtr("3200.00"),
	}
}

// --- Test Cases ---

func (suite *QuoteServiceTestSuite) TestQuote_TierExtrasAndPromocode() {
	ctx := context.Background()
	windows := domain.MustMoney("300.00", "HUF")
	maxDiscount := domain.MustMoney("200.00", "HUF")
	promo := &domain.Promocode{
		PromocodeID:        "promo-1",
		Code:               "SPRING10",
		DiscountPercentage: decimal.NewFromInt(10),
		MaxDiscountAmount:  &maxDiscount,
		Currency:           "HUF",
	}
	suite.mockCatalog.On("FindServiceByID", ctx, "svc-tier").Return(tierService(), nil).Once()
	suite.mockCatalog.On("FindTierByID", ctx, "svc-tier", "tier-1").Return(standardTier(), nil).Once()
	suite.mockCatalog.On("FindExtrasByIDs", ctx, []string{"windows"}).
		Return([]domain.Extra{{ExtraID: "windows", Name: "Window cleaning", Amount: &windows}}, nil).Once()
	suite.mockValidator.On("Validate", ctx, "spring10", false).Return(domain.ValidPromocode(promo), nil).Once()

	resp, err := suite.service.Quote(ctx, dto.QuoteRequest{
		ServiceID: "svc-tier",
		TierID:    strPtr("tier-1"),
		ExtraIDs:  []string{"windows"},
		Promocode: "spring10",
	})

	suite.Require().NoError(err)
	suite.Equal("3200.00", resp.SelectedAmount)
	suite.Equal("300.00", resp.ExtrasAmount)
	suite.Equal("200.00", resp.DiscountAmount)
	suite.Equal("3300.00", resp.TotalAmount)
	suite.Equal("HUF", resp.Currency)
	suite.Equal("tier-1", *resp.TierID)
	suite.Equal("promo-1", *resp.PromocodeID)
	suite.mockCatalog.AssertExpectations(suite.T())
	suite.mockValidator.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestQuote_TierResolvedFromArea() {
	ctx := context.Background()
	area := decimal.RequireFromString("42.5")
	suite.mockCatalog.On("FindServiceByID", ctx, "svc-tier").Return(tierService(), nil).Once()
	suite.mockCatalog.On("FindTierForArea", ctx, "svc-tier", area).Return(standardTier(), nil).Once()

	resp, err := suite.service.Quote(ctx, dto.QuoteRequest{ServiceID: "svc-tier", Area: &area})

	suite.Require().NoError(err)
	suite.Equal("3200.00", resp.TotalAmount)
	suite.Equal("tier-1", *resp.TierID)
	suite.Nil(resp.PromocodeID)
	suite.mockValidator.AssertNotCalled(suite.T(), "Validate", mock.Anything, mock.Anything, mock.Anything)
	suite.mockCatalog.AssertNotCalled(suite.T(), "FindExtrasByIDs", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestQuote_PricePerMeter() {
	ctx := context.Background()
	suite.mockCatalog.On("FindServiceByID", ctx, "svc-sqm").Return(perMeterService(), nil).Once()

	resp, err := suite.service.Quote(ctx, dto.QuoteRequest{ServiceID: "svc-sqm", Area: decimalPtr("25"), Currency: "HUF"})

	suite.Require().NoError(err)
	suite.Equal("3000.00", resp.SelectedAmount)
	suite.Equal("3000.00", resp.TotalAmount)
	suite.Nil(resp.TierID)
	suite.mockCatalog.AssertNotCalled(suite.T(), "FindTierForArea", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestQuote_AreaBelowMinimum() {
	ctx := context.Background()
	suite.mockCatalog.On("FindServiceByID", ctx, "svc-sqm").Return(perMeterService(), nil).Once()

	_, err := suite.service.Quote(ctx, dto.QuoteRequest{ServiceID: "svc-sqm", Area: decimalPtr("10")})

	suite.ErrorIs(err, apperrors.ErrInvalidInput)
}

func (suite *QuoteServiceTestSuite) TestQuote_AreaRangeWithoutTierOrArea() {
	ctx := context.Background()
	suite.mockCatalog.On("FindServiceByID", ctx, "svc-tier").Return(tierService(), nil).Once()

	_, err := suite.service.Quote(ctx, dto.QuoteRequest{ServiceID: "svc-tier"})

	suite.ErrorIs(err, apperrors.ErrInvalidInput)
}

func (suite *QuoteServiceTestSuite) TestQuote_InvalidPromocode() {
	ctx := context.Background()
	suite.mockCatalog.On("FindServiceByID", ctx, "svc-tier").Return(tierService(), nil).Once()
	suite.mockCatalog.On("FindTierByID", ctx, "svc-tier", "tier-1").Return(standardTier(), nil).Once()
	suite.mockValidator.On("Validate", ctx, "EXPIRED", false).
		Return(domain.InvalidPromocode(domain.PromocodeInactivePeriod), nil).Once()

	resp, err := suite.service.Quote(ctx, dto.QuoteRequest{ServiceID: "svc-tier", TierID: strPtr("tier-1"), Promocode: "EXPIRED"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, string(domain.PromocodeInactivePeriod))
}

func (suite *QuoteServiceTestSuite) TestQuote_PromocodeStorageError() {
	ctx := context.Background()
	suite.mockCatalog.On("FindServiceByID", ctx, "svc-tier").Return(tierService(), nil).Once()
	suite.mockCatalog.On("FindTierByID", ctx, "svc-tier", "tier-1").Return(standardTier(), nil).Once()
	suite.mockValidator.On("Validate", ctx, "SPRING10", false).
		Return(domain.PromocodeValidationResult{}, assert.AnError).Once()

	_, err := suite.service.Quote(ctx, dto.QuoteRequest{ServiceID: "svc-tier", TierID: strPtr("tier-1"), Promocode: "SPRING10"})

	suite.ErrorIs(err, assert.AnError)
}

func (suite *QuoteServiceTestSuite) TestQuote_RequestValidation() {
	tests := []struct {
		name string
		req  dto.QuoteRequest
	}{
		{"missing service", dto.QuoteRequest{}},
		{"blank extra id", dto.QuoteRequest{ServiceID: "svc-tier", ExtraIDs: []string{""}}},
		{"bad currency", dto.QuoteRequest{ServiceID: "svc-tier", Currency: "FORINT"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.Quote(context.Background(), tt.req)

			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockCatalog.AssertNotCalled(suite.T(), "FindServiceByID", mock.Anything, mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestQuote_InactiveService() {
	ctx := context.Background()
	svc := tierService()
	svc.IsActive = false
	suite.mockCatalog.On("FindServiceByID", ctx, "svc-tier").Return(svc, nil).Once()

	_, err := suite.service.Quote(ctx, dto.QuoteRequest{ServiceID: "svc-tier", TierID: strPtr("tier-1")})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *QuoteServiceTestSuite) TestQuote_ServiceNotFound() {
	ctx := context.Background()
	suite.mockCatalog.On("FindServiceByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Quote(ctx, dto.QuoteRequest{ServiceID: "missing"})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *QuoteServiceTestSuite) TestQuote_ExtraInOtherCurrency() {
	ctx := context.Background()
	fee := domain.MustMoney("10.00", "EUR")
	suite.mockCatalog.On("FindServiceByID", ctx, "svc-tier").Return(tierService(), nil).Once()
	suite.mockCatalog.On("FindTierByID", ctx, "svc-tier", "tier-1").Return(standardTier(), nil).Once()
	suite.mockCatalog.On("FindExtrasByIDs", ctx, []string{"oven"}).
		Return([]domain.Extra{{ExtraID: "oven", Amount: &fee}}, nil).Once()

	_, err := suite.service.Quote(ctx, dto.QuoteRequest{ServiceID: "svc-tier", TierID: strPtr("tier-1"), ExtraIDs: []string{"oven"}})

	suite.ErrorIs(err, domain.ErrCurrencyMismatch)
}

// --- Run Test Suite ---
func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}
