package domain

import "time"

// PaymentStatus enumerates the states of a donation payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// PaymentMethod enumerates how a donor pays.
type PaymentMethod string

const (
	PaymentMethodCard              PaymentMethod = "card"
	PaymentMethodUniversityAccount PaymentMethod = "university_account"
	PaymentMethodOther             PaymentMethod = "other"
)

// AnonymousDonorName is shown in place of the donor name for anonymous gifts.
const AnonymousDonorName = "Anonymous Donor"

// Donation represents a supporter contribution record.
type Donation struct {
	ID             string
	CampaignID     string
	DonorID        *string
	DonorName      string
	DonorEmail     string
	Amount         float64
	Message        string
	Anonymous      bool
	PaymentStatus  PaymentStatus
	PaymentMethod  PaymentMethod
	IdempotencyKey string
	CreatedAt      time.Time
}

// DisplayName returns the name that may be shown publicly. The real name is
// always stored.
func (d Donation) DisplayName() string {
	if d.Anonymous {
		return AnonymousDonorName
	}
	return d.DonorName
}
