package donation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"campusfund/internal/domain"
	"campusfund/internal/locale"
	"campusfund/internal/payment"
)

// Gateway charges a donation. payment.Simulated is the default.
type Gateway interface {
	Charge(ctx context.Context, charge payment.Charge) (payment.Receipt, error)
}

// SubmitInput carries one donation attempt. Actor is the signed-in user, if
// any; IdempotencyKey lets clients retry safely.
type SubmitInput struct {
	Actor          *domain.User
	CampaignID     string
	Request        Request
	IdempotencyKey string
	Locale         string
}

// Result is the confirmation returned for a recorded donation.
type Result struct {
	Donation      domain.Donation
	Message       string
	TransactionID string
	Replayed      bool
	State         State
}

// Service runs the donation submission pipeline.
type Service struct {
	campaigns domain.CampaignRepository
	donations domain.DonationRepository
	gateway   Gateway
	logger    zerolog.Logger
	now       func() time.Time
	newID     func() string
}

// NewService wires the pipeline.
func NewService(campaigns domain.CampaignRepository, donations domain.DonationRepository, gateway Gateway, logger zerolog.Logger) *Service {
	return &Service{
		campaigns: campaigns,
		donations: donations,
		gateway:   gateway,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// WithClock overrides the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns the donations recorded for a campaign in insertion order.
func (s *Service) List(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	return s.donations.ListByCampaign(ctx, strings.TrimSpace(campaignID))
}

// Submit validates the request, charges it and records the donation. Nothing
// is stored unless every step succeeds. Cancelling ctx while the payment is
// in flight discards the attempt.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Result, error) {
	campaignID := strings.TrimSpace(in.CampaignID)
	sub := &submission{state: StateCollecting, logger: s.logger.With().Str("campaign_id", campaignID).Logger()}

	sub.to(StateValidating)
	if err := Validate(in.Request); err != nil {
		sub.to(StateInvalid)
		return nil, err
	}
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		sub.to(StateInvalid)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("load campaign: %w", err)
	}
	if campaign.Status != domain.CampaignStatusActive {
		sub.to(StateInvalid)
		return nil, domain.NewValidationError("campaignId", "Campaign is not accepting donations")
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if replay, err := s.replay(ctx, key, campaign, in.Locale); replay != nil || err != nil {
		if err != nil {
			sub.to(StateInvalid)
			return nil, err
		}
		return replay, nil
	}

	sub.to(StateSubmitting)
	d := s.build(in, campaign.ID, key)
	receipt, err := s.gateway.Charge(ctx, payment.Charge{
		Reference:  d.ID,
		CampaignID: campaign.ID,
		Amount:     d.Amount,
		Method:     d.PaymentMethod,
		DonorEmail: d.DonorEmail,
	})
	if err != nil {
		sub.to(StateFailed)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.logger.Warn().Err(err).Str("campaign_id", campaign.ID).Msg("payment failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}
	if err := ctx.Err(); err != nil {
		sub.to(StateFailed)
		return nil, err
	}

	d.PaymentStatus = domain.PaymentStatusCompleted
	d.CreatedAt = s.now().UTC()
	if err := s.donations.Record(ctx, &d); err != nil {
		sub.to(StateFailed)
		if errors.Is(err, domain.ErrDuplicateOperation) && key != "" {
			// Lost a race with a concurrent retry carrying the same key.
			return s.replay(ctx, key, campaign, in.Locale)
		}
		return nil, fmt.Errorf("record donation: %w", err)
	}
	sub.to(StateConfirmed)

	s.logger.Info().
		Str("donation_id", d.ID).
		Str("campaign_id", campaign.ID).
		Float64("amount", d.Amount).
		Str("method", string(d.PaymentMethod)).
		Msg("donation confirmed")

	return &Result{
		Donation:      d,
		Message:       locale.ThankYou(in.Locale, d.Amount, campaign.Title),
		TransactionID: receipt.TransactionID,
		State:         sub.state,
	}, nil
}

// replay returns the donation already recorded under key, if any. A key
// reused for a different campaign is rejected.
func (s *Service) replay(ctx context.Context, key string, campaign *domain.Campaign, loc string) (*Result, error) {
	if key == "" {
		return nil, nil
	}
	existing, err := s.donations.GetByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup idempotency key: %w", err)
	}
	if existing.CampaignID != campaign.ID {
		return nil, domain.NewValidationError("idempotencyKey", "Idempotency key was already used for another campaign")
	}
	return &Result{
		Donation: *existing,
		Message:  locale.ThankYou(loc, existing.Amount, campaign.Title),
		Replayed: true,
		State:    StateConfirmed,
	}, nil
}

func (s *Service) build(in SubmitInput, campaignID, key string) domain.Donation {
	req := in.Request
	d := domain.Donation{
		ID:             s.newID(),
		CampaignID:     campaignID,
		DonorName:      strings.TrimSpace(req.DonorName),
		DonorEmail:     strings.TrimSpace(req.DonorEmail),
		Amount:         roundCents(*req.Amount),
		Anonymous:      *req.Anonymous,
		PaymentStatus:  domain.PaymentStatusPending,
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		IdempotencyKey: key,
	}
	if req.Message != nil {
		d.Message = strings.TrimSpace(*req.Message)
	}
	if in.Actor != nil && in.Actor.ID != "" {
		id := in.Actor.ID
		d.DonorID = &id
	}
	return d
}

type submission struct {
	state  State
	logger zerolog.Logger
}

func (s *submission) to(next State) {
	if !CanTransition(s.state, next) {
		s.logger.Error().Str("from", string(s.state)).Str("to", string(next)).Msg("invalid donation state transition")
		return
	}
	s.logger.Debug().Str("from", string(s.state)).Str("to", string(next)).Msg("donation state")
	s.state = next
}

// roundCents matches the numeric(12,2) column so the stored and returned
// amounts agree.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
