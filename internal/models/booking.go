package models

import (
	"database/sql"
)

// Booking represents the booking columns read by pricing and settlement.
type Booking struct {
	BookingID     string         `db:"booking_id"`
	ServiceID     string         `db:"service_id"`
	CleanerID     sql.NullString `db:"cleaner_id"`   // Nullable
	PromocodeID   sql.NullString `db:"promocode_id"` // Nullable
	Status        string         `db:"status"`
	PaymentMethod string         `db:"payment_method"`
	Amount        string         `db:"amount"` // numeric read as text
	Currency      string         `db:"currency"`
	CodSettledAt  sql.NullTime   `db:"cod_settled_at"` // Nullable
	AuditFields
}

// Cleaner represents a cleaner account.
type Cleaner struct {
	CleanerID string `db:"cleaner_id"`
	Name      string `db:"name"`
}
