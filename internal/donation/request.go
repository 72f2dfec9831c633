// Package donation validates donation requests, charges them through a
// payment gateway and records the confirmed gift against its campaign.
package donation

import (
	"strings"
	"unicode/utf8"

	"campusfund/internal/domain"
)

const (
	MinAmount        = 5
	MaxAmount        = 50000
	MinDonorName     = 2
	MaxMessageLength = 500
)

// Request is the donor-submitted payload. Pointer fields distinguish a
// missing value from its zero value.
type Request struct {
	Amount        *float64 `json:"amount"`
	DonorName     string   `json:"donorName"`
	DonorEmail    string   `json:"donorEmail"`
	Message       *string  `json:"message,omitempty"`
	Anonymous     *bool    `json:"anonymous"`
	PaymentMethod string   `json:"paymentMethod"`
}

// Validate checks req against the donation schema. It returns a
// *domain.ValidationError listing every offending field, or nil.
func Validate(req Request) error {
	var ve domain.ValidationError

	switch {
	case req.Amount == nil:
		ve.Add("amount", "Amount is required")
	case *req.Amount < MinAmount:
		ve.Add("amount", "Minimum donation amount is $5")
	case *req.Amount > MaxAmount:
		ve.Add("amount", "Maximum donation amount is $50,000")
	}

	if utf8.RuneCountInString(strings.TrimSpace(req.DonorName)) < MinDonorName {
		ve.Add("donorName", "Donor name must be at least 2 characters long")
	}

	if !domain.ValidEmail(req.DonorEmail) {
		ve.Add("donorEmail", "Please enter a valid email address")
	}

	if req.Message != nil && utf8.RuneCountInString(*req.Message) > MaxMessageLength {
		ve.Add("message", "Message cannot exceed 500 characters")
	}

	if req.Anonymous == nil {
		ve.Add("anonymous", "Anonymous must be true or false")
	}

	switch domain.PaymentMethod(req.PaymentMethod) {
	case domain.PaymentMethodCard, domain.PaymentMethodUniversityAccount:
	default:
		ve.Add("paymentMethod", "Payment method must be card or university_account")
	}

	return ve.OrNil()
}
