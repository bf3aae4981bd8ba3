package domain

import "time"

// AuditFields holds the row timestamps every stored record carries.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
