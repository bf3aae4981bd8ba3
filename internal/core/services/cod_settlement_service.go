package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cleanbook_engine/internal/apperrors"
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/cleanbook_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cleanbook_engine/internal/core/ports/services"
	"github.com/SscSPs/cleanbook_engine/internal/pkg/clock"
	"github.com/shopspring/decimal"
)

// CodSource tags wallet deposits produced by cash-on-delivery settlements.
const CodSource = "cash_on_delivery"

type codSettlementService struct {
	BaseService
	walletRepo  portsrepo.WalletLedger
	txManager   portsrepo.TransactionManager
	bookingRepo portsrepo.BookingRepositoryFacade
	cleanerRepo portsrepo.CleanerReader
	platformFee decimal.Decimal
	clock       clock.Clock
}

// SettlementOption is a functional option for configuring the settlement service
type SettlementOption func(*codSettlementService)

// WithPlatformFee sets the flat fee subtracted from every cash-on-delivery booking.
func WithPlatformFee(fee decimal.Decimal) SettlementOption {
	return func(s *codSettlementService) {
		s.platformFee = fee
	}
}

// WithSettlementClock overrides the time source used to stamp settled bookings.
func WithSettlementClock(c clock.Clock) SettlementOption {
	return func(s *codSettlementService) {
		s.clock = c
	}
}

// WithBookingStore adds the dependencies needed by SettleBooking.
func WithBookingStore(txManager portsrepo.TransactionManager, bookings portsrepo.BookingRepositoryFacade, cleaners portsrepo.CleanerReader) SettlementOption {
	return func(s *codSettlementService) {
		s.txManager = txManager
		s.bookingRepo = bookings
		s.cleanerRepo = cleaners
	}
}

// NewCodSettlementService creates a new settlement service with the provided options
func NewCodSettlementService(wallet portsrepo.WalletLedger, options ...SettlementOption) portssvc.SettlementSvcFacade {
	svc := &codSettlementService{
		walletRepo:  wallet,
		platformFee: decimal.Zero,
		clock:       clock.NewRealClock(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SettlementSvcFacade = (*codSettlementService)(nil)

func (s *codSettlementService) CalculatePayoutAmount(booking domain.Booking) (string, error) {
	payout, _, err := s.payout(booking)
	if err != nil {
		return "", err
	}
	return payout.String(), nil
}

// payout returns the floored payout and the fee it was computed with, both in the booking currency.
func (s *codSettlementService) payout(booking domain.Booking) (domain.Money, domain.Money, error) {
	amount, err := domain.NewMoneyFromString(booking.RawAmount, booking.Currency)
	if err != nil {
		return domain.Money{}, domain.Money{}, fmt.Errorf("booking %s amount: %w", booking.BookingID, err)
	}
	fee, err := domain.NewMoney(s.platformFee, booking.Currency)
	if err != nil {
		return domain.Money{}, domain.Money{}, fmt.Errorf("platform fee: %w", err)
	}
	net, err := amount.Minus(fee, domain.RoundHalfUp)
	if err != nil {
		return domain.Money{}, domain.Money{}, fmt.Errorf("booking %s payout: %w", booking.BookingID, err)
	}
	if net.IsNegative() {
		net = domain.ZeroMoney(net.Currency())
	}
	return net, fee, nil
}

func (s *codSettlementService) Settle(ctx context.Context, booking domain.Booking, cleaner domain.Cleaner) (*domain.Settlement, error) {
	payout, fee, err := s.payout(booking)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate payout", slog.String("booking_id", booking.BookingID))
		return nil, err
	}

	meta := map[string]any{
		"source":       CodSource,
		"booking_id":   booking.BookingID,
		"currency":     payout.Currency(),
		"platform_fee": fee.String(),
	}
	txn, err := s.walletRepo.Deposit(ctx, cleaner, payout.Amount(), meta)
	if err != nil {
		s.LogError(ctx, err, "Failed to deposit payout",
			slog.String("booking_id", booking.BookingID),
			slog.String("cleaner_id", cleaner.CleanerID))
		return nil, fmt.Errorf("failed to deposit payout for booking %s: %w", booking.BookingID, err)
	}

	s.LogInfo(ctx, "Booking settled",
		slog.String("booking_id", booking.BookingID),
		slog.String("cleaner_id", cleaner.CleanerID),
		slog.String("payout", payout.String()),
		slog.String("currency", payout.Currency()))

	return &domain.Settlement{Payout: payout.String(), Transaction: txn}, nil
}

func (s *codSettlementService) SettleBooking(ctx context.Context, bookingID, cleanerID string) (*domain.Settlement, error) {
	if s.txManager == nil || s.bookingRepo == nil || s.cleanerRepo == nil {
		return nil, fmt.Errorf("%w: settlement service has no booking store", apperrors.ErrInternal)
	}

	var settlement *domain.Settlement
	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.FindBookingByID(txCtx, bookingID, true)
		if err != nil {
			return fmt.Errorf("failed to load booking %s: %w", bookingID, err)
		}
		if err := checkSettleable(booking, cleanerID); err != nil {
			return err
		}

		cleaner, err := s.cleanerRepo.FindCleanerByID(txCtx, cleanerID)
		if err != nil {
			return fmt.Errorf("failed to load cleaner %s: %w", cleanerID, err)
		}

		settlement, err = s.Settle(txCtx, *booking, *cleaner)
		if err != nil {
			return err
		}
		return s.bookingRepo.MarkCodSettled(txCtx, bookingID, s.clock.Now())
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to settle booking",
			slog.String("booking_id", bookingID),
			slog.String("cleaner_id", cleanerID))
		return nil, err
	}
	return settlement, nil
}

func checkSettleable(booking *domain.Booking, cleanerID string) error {
	switch {
	case booking.IsSettled():
		return fmt.Errorf("booking %s: %w", booking.BookingID, apperrors.ErrAlreadySettled)
	case booking.Status != domain.BookingCompleted:
		return fmt.Errorf("%w: booking %s is %s, not completed", apperrors.ErrValidation, booking.BookingID, booking.Status)
	case booking.PaymentMethod != domain.PaymentCash:
		return fmt.Errorf("%w: booking %s is paid by %s", apperrors.ErrValidation, booking.BookingID, booking.PaymentMethod)
	case booking.CleanerID != nil && *booking.CleanerID != cleanerID:
		return fmt.Errorf("%w: booking %s is assigned to another cleaner", apperrors.ErrValidation, booking.BookingID)
	}
	return nil
}
