package dto

import (
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// QuoteRequest defines the data needed to price a booking.
type QuoteRequest struct {
	ServiceID string           `json:"serviceID" validate:"required"`
	TierID    *string          `json:"tierID"` // Optional: resolved from Area for area-range services
	Area      *decimal.Decimal `json:"area"`   // Square meters; required for per-meter services
	ExtraIDs  []string         `json:"extraIDs" validate:"omitempty,dive,required"`
	Promocode string           `json:"promocode"`                           // Optional
	Currency  string           `json:"currency" validate:"omitempty,len=3"` // Defaults to the configured currency
}

// QuoteResponse defines the itemized price returned for a quote.
// Mirrors domain.PriceBreakdown with amounts rendered at two decimals.
type QuoteResponse struct {
	ServiceID      string  `json:"serviceID"`
	TierID         *string `json:"tierID,omitempty"`
	SelectedAmount string  `json:"selectedAmount"`
	ExtrasAmount   string  `json:"extrasAmount"`
	DiscountAmount string  `json:"discountAmount"`
	TotalAmount    string  `json:"totalAmount"`
	Currency       string  `json:"currency"`
	PromocodeID    *string `json:"promocodeID,omitempty"`
}

// ToQuoteResponse converts a priced input and its breakdown to QuoteResponse DTO
func ToQuoteResponse(input domain.PricingInput, b domain.PriceBreakdown) QuoteResponse {
	resp := QuoteResponse{
		ServiceID:      input.Service.ServiceID,
		SelectedAmount: b.SelectedAmount.String(),
		ExtrasAmount:   b.ExtrasAmount.String(),
		DiscountAmount: b.DiscountAmount.String(),
		TotalAmount:    b.TotalAmount.String(),
		Currency:       b.Currency,
	}
	if input.SelectedTier != nil {
		tierID := input.SelectedTier.TierID
		resp.TierID = &tierID
	}
	if input.Promocode != nil {
		promocodeID := input.Promocode.PromocodeID
		resp.PromocodeID = &promocodeID
	}
	return resp
}
