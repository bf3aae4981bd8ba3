package dto

import (
	"time"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
)

// SettlementResponse defines the data returned after a cash-on-delivery settlement.
type SettlementResponse struct {
	BookingID     string         `json:"bookingID"`
	CleanerID     string         `json:"cleanerID"`
	Payout        string         `json:"payout"`
	TransactionID string         `json:"transactionID,omitempty"`
	WalletID      string         `json:"walletID,omitempty"`
	Meta          map[string]any `json:"meta,omitempty"`
	CreatedAt     *time.Time     `json:"createdAt,omitempty"`
}

// ToSettlementResponse converts a domain.Settlement to SettlementResponse DTO
func ToSettlementResponse(bookingID, cleanerID string, s *domain.Settlement) SettlementResponse {
	resp := SettlementResponse{
		BookingID: bookingID,
		CleanerID: cleanerID,
		Payout:    s.Payout,
	}
	if txn := s.Transaction; txn != nil {
		resp.TransactionID = txn.TransactionID
		resp.WalletID = txn.WalletID
		resp.Meta = txn.Meta
		createdAt := txn.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}
