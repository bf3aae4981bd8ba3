package mapping

import (
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	"github.com/SscSPs/cleanbook_engine/internal/models"
)

// ToDomainWalletTransaction converts a models.WalletTransaction to domain.WalletTransaction
func ToDomainWalletTransaction(m models.WalletTransaction) domain.WalletTransaction {
	return domain.WalletTransaction{
		TransactionID: m.TransactionID,
		WalletID:      m.WalletID,
		HolderID:      m.HolderID,
		Type:          domain.WalletTransactionType(m.Type),
		Amount:        m.Amount,
		Confirmed:     m.Confirmed,
		Meta:          m.Meta,
		CreatedAt:     m.CreatedAt,
	}
}
