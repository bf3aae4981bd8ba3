package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionManager ---
type MockTransactionManager struct {
	mock.Mock
}

// WithinTransaction runs fn directly unless the expectation returns an error.
func (m *MockTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// --- Mock PromocodeRepository ---
type MockPromocodeRepository struct {
	mock.Mock
}

func (m *MockPromocodeRepository) FindPromocodeByCode(ctx context.Context, code string, forUpdate bool) (*domain.Promocode, error) {
	args := m.Called(ctx, code, forUpdate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Promocode), args.Error(1)
}

func (m *MockPromocodeRepository) CountActiveBookingsByPromocode(ctx context.Context, promocodeID string) (int, error) {
	args := m.Called(ctx, promocodeID)
	return args.Int(0), args.Error(1)
}

// --- Mock CatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockCatalogRepository) FindTierByID(ctx context.Context, serviceID, tierID string) (*domain.PricingTier, error) {
	args := m.Called(ctx, serviceID, tierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingTier), args.Error(1)
}

func (m *MockCatalogRepository) FindTierForArea(ctx context.Context, serviceID string, area decimal.Decimal) (*domain.PricingTier, error) {
	args := m.Called(ctx, serviceID, area)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingTier), args.Error(1)
}

func (m *MockCatalogRepository) FindExtrasByIDs(ctx context.Context, extraIDs []string) ([]domain.Extra, error) {
	args := m.Called(ctx, extraIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Extra), args.Error(1)
}

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string, forUpdate bool) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, forUpdate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) MarkCodSettled(ctx context.Context, bookingID string, settledAt time.Time) error {
	args := m.Called(ctx, bookingID, settledAt)
	return args.Error(0)
}

// --- Mock CleanerRepository ---
type MockCleanerRepository struct {
	mock.Mock
}

func (m *MockCleanerRepository) FindCleanerByID(ctx context.Context, cleanerID string) (*domain.Cleaner, error) {
	args := m.Called(ctx, cleanerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cleaner), args.Error(1)
}

// --- Mock WalletLedger ---
type MockWalletLedger struct {
	mock.Mock
}

func (m *MockWalletLedger) Deposit(ctx context.Context, holder domain.Cleaner, amount decimal.Decimal, meta map[string]any) (*domain.WalletTransaction, error) {
	args := m.Called(ctx, holder, amount, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletTransaction), args.Error(1)
}

// --- Mock PromocodeValidator ---
type MockPromocodeValidator struct {
	mock.Mock
}

func (m *MockPromocodeValidator) Validate(ctx context.Context, code string, lockForUpdate bool) (domain.PromocodeValidationResult, error) {
	args := m.Called(ctx, code, lockForUpdate)
	return args.Get(0).(domain.PromocodeValidationResult), args.Error(1)
}

// Helper functions
func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func strPtr(s string) *string {
	return &s
}
