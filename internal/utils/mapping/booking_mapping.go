package mapping

import (
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	"github.com/SscSPs/cleanbook_engine/internal/models"
)

// ToDomainBooking converts a models.Booking to domain.Booking
func ToDomainBooking(m models.Booking) domain.Booking {
	b := domain.Booking{
		BookingID:     m.BookingID,
		ServiceID:     m.ServiceID,
		Status:        domain.BookingStatus(m.Status),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		RawAmount:     m.Amount,
		Currency:      domain.NormalizeCurrency(m.Currency),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.CleanerID.Valid {
		cleanerID := m.CleanerID.String
		b.CleanerID = &cleanerID
	}
	if m.PromocodeID.Valid {
		promocodeID := m.PromocodeID.String
		b.PromocodeID = &promocodeID
	}
	if m.CodSettledAt.Valid {
		settledAt := m.CodSettledAt.Time
		b.CodSettledAt = &settledAt
	}
	return b
}

// ToDomainCleaner converts a models.Cleaner to domain.Cleaner
func ToDomainCleaner(m models.Cleaner) domain.Cleaner {
	return domain.Cleaner{CleanerID: m.CleanerID, Name: m.Name}
}
