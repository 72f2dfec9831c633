// Package payment holds the payment gateways donations are charged through.
// Only simulated gateways exist; a real provider would implement the same
// Charge contract.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campusfund/internal/domain"
)

// ErrDeclined is returned when the gateway refuses a charge.
var ErrDeclined = errors.New("payment declined")

// Charge is a single request to move money for a donation.
type Charge struct {
	Reference  string
	CampaignID string
	Amount     float64
	Method     domain.PaymentMethod
	DonorEmail string
}

// Receipt confirms a successful charge.
type Receipt struct {
	TransactionID string
	Reference     string
	ProcessedAt   time.Time
}

// Simulated stands in for a payment provider. It waits a fixed delay and
// then always succeeds. Cancelling ctx aborts the wait.
type Simulated struct {
	delay time.Duration
	now   func() time.Time
}

// NewSimulated builds a Simulated gateway that takes delay per charge.
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{delay: delay, now: time.Now}
}

// Charge waits for the configured delay and returns a receipt.
func (s *Simulated) Charge(ctx context.Context, c Charge) (Receipt, error) {
	if c.Amount <= 0 {
		return Receipt{}, fmt.Errorf("%w: amount must be positive", ErrDeclined)
	}
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	return Receipt{
		TransactionID: "sim_" + uuid.NewString(),
		Reference:     c.Reference,
		ProcessedAt:   s.now().UTC(),
	}, nil
}

// Declining refuses every charge. It lets the failed path be exercised
// without a real provider.
type Declining struct {
	Reason string
}

// Charge always fails with ErrDeclined.
func (d Declining) Charge(ctx context.Context, c Charge) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	reason := d.Reason
	if reason == "" {
		reason = "card declined"
	}
	return Receipt{}, fmt.Errorf("%w: %s", ErrDeclined, reason)
}
