package services

import (
	"context"

	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
)

// PromocodeValidatorSvc answers whether a promotional code can currently be used.
type PromocodeValidatorSvc interface {
	// Validate looks up code (trimmed, upper-cased) and checks its validity window and
	// global usage cap. Rejection is reported through the result, not the error; the
	// error is reserved for storage failures.
	//
	// With lockForUpdate the promocode row stays locked until the transaction in ctx
	// ends. Validation and the booking insert that consumes the code must share that
	// transaction, otherwise two concurrent bookings can both pass the usage check.
	Validate(ctx context.Context, code string, lockForUpdate bool) (domain.PromocodeValidationResult, error)
}

// PromocodeSvcFacade combines all promocode-related service interfaces
type PromocodeSvcFacade interface {
	PromocodeValidatorSvc
}
