package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cleanbook_engine/internal/apperrors"
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	portssvc "github.com/SscSPs/cleanbook_engine/internal/core/ports/services"
	"github.com/SscSPs/cleanbook_engine/internal/core/services"
	"github.com/SscSPs/cleanbook_engine/internal/pkg/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type PromocodeValidatorTestSuite struct {
	suite.Suite
	mockRepo  *MockPromocodeRepository
	clock     *clock.MockClock
	validator portssvc.PromocodeSvcFacade
	now       time.Time
}

func (suite *PromocodeValidatorTestSuite) SetupTest() {
	suite.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.mockRepo = new(MockPromocodeRepository)
	suite.clock = clock.NewMockClock(suite.now)
	suite.validator = services.NewPromocodeValidator(suite.mockRepo, services.WithValidatorClock(suite.clock))
}

func (suite *PromocodeValidatorTestSuite) springPromocode() *domain.Promocode {
	return &domain.Promocode{
		PromocodeID:        "promo-1",
		Code:               "SPRING10",
		DiscountPercentage: decimal.NewFromInt(10),
		Currency:           "HUF",
	}
}

func (suite *PromocodeValidatorTestSuite) assertInvalid(result domain.PromocodeValidationResult, reason domain.PromocodeInvalidReason) {
	suite.False(result.Valid)
	suite.Require().NotNil(result.Reason)
	suite.Equal(reason, *result.Reason)
	suite.Nil(result.Promocode)
}

// --- Test Cases ---

func (suite *PromocodeValidatorTestSuite) TestValidate_BlankCodeIsNotFound() {
	for _, code := range []string{"", "   ", "\t\n"} {
		result, err := suite.validator.Validate(context.Background(), code, false)

		suite.Require().NoError(err)
		suite.assertInvalid(result, domain.PromocodeNotFound)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPromocodeByCode", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PromocodeValidatorTestSuite) TestValidate_NormalizesCode() {
	ctx := context.Background()
	promo := suite.springPromocode()
	suite.mockRepo.On("FindPromocodeByCode", ctx, "SPRING10", false).Return(promo, nil).Once()

	result, err := suite.validator.Validate(ctx, "  spring10 ", false)

	suite.Require().NoError(err)
	suite.True(result.Valid)
	suite.Nil(result.Reason)
	suite.Same(promo, result.Promocode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PromocodeValidatorTestSuite) TestValidate_UnknownCodeIsNotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindPromocodeByCode", ctx, "NOPE", false).Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.validator.Validate(ctx, "nope", false)

	suite.Require().NoError(err)
	suite.assertInvalid(result, domain.PromocodeNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PromocodeValidatorTestSuite) TestValidate_StorageErrorIsReturned() {
	ctx := context.Background()
	suite.mockRepo.On("FindPromocodeByCode", ctx, "SPRING10", false).Return(nil, assert.AnError).Once()

	_, err := suite.validator.Validate(ctx, "SPRING10", false)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *PromocodeValidatorTestSuite) TestValidate_LockIsForwarded() {
	ctx := context.Background()
	suite.mockRepo.On("FindPromocodeByCode", ctx, "SPRING10", true).Return(suite.springPromocode(), nil).Once()

	result, err := suite.validator.Validate(ctx, "SPRING10", true)

	suite.Require().NoError(err)
	suite.True(result.Valid)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PromocodeValidatorTestSuite) TestValidate_LockOutsideTransactionFails() {
	ctx := context.Background()
	suite.mockRepo.On("FindPromocodeByCode", ctx, "SPRING10", true).Return(nil, apperrors.ErrLockOutsideTransaction).Once()

	_, err := suite.validator.Validate(ctx, "SPRING10", true)

	suite.ErrorIs(err, apperrors.ErrLockOutsideTransaction)
}

func (suite *PromocodeValidatorTestSuite) TestValidate_ValidityWindow() {
	start := suite.now.Add(-time.Hour)
	end := suite.now.Add(time.Hour)
	tests := []struct {
		name      string
		startsAt  *time.Time
		expiresAt *time.Time
		at        time.Time
		wantValid bool
	}{
		{"unbounded", nil, nil, suite.now, true},
		{"inside", &start, &end, suite.now, true},
		{"exactly at start", &start, &end, start, true},
		{"exactly at expiry", &start, &end, end, true},
		{"before start", &start, nil, start.Add(-time.Second), false},
		{"after expiry", nil, &end, end.Add(time.Second), false},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			ctx := context.Background()
			promo := suite.springPromocode()
			promo.StartsAt = tt.startsAt
			promo.ExpiresAt = tt.expiresAt
			suite.clock.Set(tt.at)
			suite.mockRepo.On("FindPromocodeByCode", ctx, "SPRING10", false).Return(promo, nil).Once()

			result, err := suite.validator.Validate(ctx, "SPRING10", false)

			suite.Require().NoError(err)
			if tt.wantValid {
				suite.True(result.Valid)
			} else {
				suite.assertInvalid(result, domain.PromocodeInactivePeriod)
			}
		})
	}
}

func (suite *PromocodeValidatorTestSuite) TestValidate_UsageLimit() {
	tests := []struct {
		name      string
		used      int
		wantValid bool
	}{
		{"unused", 0, true},
		{"one below cap", 4, true},
		{"at cap", 5, false},
		{"over cap", 6, false},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			ctx := context.Background()
			promo := suite.springPromocode()
			promo.MaxGlobalUses = intPtr(5)
			suite.mockRepo.On("FindPromocodeByCode", ctx, "SPRING10", false).Return(promo, nil).Once()
			suite.mockRepo.On("CountActiveBookingsByPromocode", ctx, "promo-1").Return(tt.used, nil).Once()

			result, err := suite.validator.Validate(ctx, "SPRING10", false)

			suite.Require().NoError(err)
			if tt.wantValid {
				suite.True(result.Valid)
				suite.Same(promo, result.Promocode)
			} else {
				suite.assertInvalid(result, domain.PromocodeUsageLimitReached)
			}
			suite.mockRepo.AssertExpectations(suite.T())
		})
	}
}

func (suite *PromocodeValidatorTestSuite) TestValidate_ZeroCapIsAlwaysReached() {
	ctx := context.Background()
	promo := suite.springPromocode()
	promo.MaxGlobalUses = intPtr(0)
	suite.mockRepo.On("FindPromocodeByCode", ctx, "SPRING10", false).Return(promo, nil).Once()
	suite.mockRepo.On("CountActiveBookingsByPromocode", ctx, "promo-1").Return(0, nil).Once()

	result, err := suite.validator.Validate(ctx, "SPRING10", false)

	suite.Require().NoError(err)
	suite.assertInvalid(result, domain.PromocodeUsageLimitReached)
}

func (suite *PromocodeValidatorTestSuite) TestValidate_NoCapSkipsCount() {
	ctx := context.Background()
	suite.mockRepo.On("FindPromocodeByCode", ctx, "SPRING10", false).Return(suite.springPromocode(), nil).Once()

	result, err := suite.validator.Validate(ctx, "SPRING10", false)

	suite.Require().NoError(err)
	suite.True(result.Valid)
	suite.mockRepo.AssertNotCalled(suite.T(), "CountActiveBookingsByPromocode", mock.Anything, mock.Anything)
}

func (suite *PromocodeValidatorTestSuite) TestValidate_InactiveSkipsCount() {
	ctx := context.Background()
	promo := suite.springPromocode()
	promo.ExpiresAt = timePtr(suite.now.Add(-time.Minute))
	promo.MaxGlobalUses = intPtr(1)
	suite.mockRepo.On("FindPromocodeByCode", ctx, "SPRING10", false).Return(promo, nil).Once()

	result, err := suite.validator.Validate(ctx, "SPRING10", false)

	suite.Require().NoError(err)
	suite.assertInvalid(result, domain.PromocodeInactivePeriod)
	suite.mockRepo.AssertNotCalled(suite.T(), "CountActiveBookingsByPromocode", mock.Anything, mock.Anything)
}

func (suite *PromocodeValidatorTestSuite) TestValidate_CountErrorIsReturned() {
	ctx := context.Background()
	promo := suite.springPromocode()
	promo.MaxGlobalUses = intPtr(3)
	suite.mockRepo.On("FindPromocodeByCode", ctx, "SPRING10", false).Return(promo, nil).Once()
	suite.mockRepo.On("CountActiveBookingsByPromocode", ctx, "promo-1").Return(0, assert.AnError).Once()

	_, err := suite.validator.Validate(ctx, "SPRING10", false)

	suite.ErrorIs(err, assert.AnError)
}

// --- Run Test Suite ---
func TestPromocodeValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(PromocodeValidatorTestSuite))
}

func TestNormalizePromocode(t *testing.T) {
	assert.Equal(t, "SPRING10", services.NormalizePromocode("  spring10\t"))
	assert.Equal(t, "", services.NormalizePromocode("   "))
}
