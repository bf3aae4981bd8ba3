package services

import (
	"context"

	"github.com/SscSPs/cleanbook_engine/internal/dto"
)

// QuoteSvc prices a booking request against the stored catalog.
type QuoteSvc interface {
	// Quote resolves the service, tier, extras and promocode named in req and returns
	// the itemized price. An unusable promocode fails with apperrors.ErrValidation.
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error)
}
