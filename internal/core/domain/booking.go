package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle state of a cleaning booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// PaymentMethod describes how the client pays for a booking.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Booking is the subset of a stored booking the engine reads.
type Booking struct {
	BookingID     string        `json:"bookingID"`     // Primary Key
	ServiceID     string        `json:"serviceID"`     // FK -> services.service_id
	CleanerID     *string       `json:"cleanerID"`     // Nullable until assigned
	PromocodeID   *string       `json:"promocodeID"`   // Nullable
	Status        BookingStatus `json:"status"`        // pending, confirmed, ... cancelled
	PaymentMethod PaymentMethod `json:"paymentMethod"` // cash or card
	RawAmount     string        `json:"amount"`        // Stored total as a decimal string, pre-cast
	Currency      string        `json:"currency"`      // ISO 4217
	CodSettledAt  *time.Time    `json:"codSettledAt"`  // Set once the COD payout is credited
	AuditFields
}

// IsSettled reports whether the cash-on-delivery payout was already credited.
func (b Booking) IsSettled() bool {
	return b.CodSettledAt != nil
}

// Cleaner is the wallet holder credited by settlements.
type Cleaner struct {
	CleanerID string `json:"cleanerID"` // Primary Key
	Name      string `json:"name"`
}

// WalletTransactionType distinguishes ledger movements.
type WalletTransactionType string

const (
	WalletDeposit  WalletTransactionType = "deposit"
	WalletWithdraw WalletTransactionType = "withdraw"
)

// WalletTransaction is a single movement recorded by the wallet ledger.
type WalletTransaction struct {
	TransactionID string                `json:"transactionID"` // Primary Key (UUID)
	WalletID      string                `json:"walletID"`      // FK -> wallets.wallet_id
	HolderID      string                `json:"holderID"`      // Cleaner ID
	Type          WalletTransactionType `json:"type"`
	Amount        decimal.Decimal       `json:"amount"`
	Confirmed     bool                  `json:"confirmed"`
	Meta          map[string]any        `json:"meta"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// Settlement is the outcome of crediting a cleaner for a cash-on-delivery booking.
type Settlement struct {
	Payout      string             `json:"payout"` // Decimal string, never negative
	Transaction *WalletTransaction `json:"transaction"`
}
