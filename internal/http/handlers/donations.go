package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusfund/internal/donation"
	"campusfund/internal/middleware"
)

// IdempotencyKeyHeader lets a client retry a donation without charging twice.
const IdempotencyKeyHeader = "Idempotency-Key"

type donationReceiptDTO struct {
	Donation      donationDTO `json:"donation"`
	TransactionID string      `json:"transactionId,omitempty"`
	Replayed      bool        `json:"replayed"`
}

func (a *App) ListDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Donations.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, http.StatusOK, toDonationDTOs(donations))
}

// SubmitDonation runs the donation pipeline for one campaign. Replays of a
// known Idempotency-Key answer with the first donation.
func (a *App) SubmitDonation(w http.ResponseWriter, r *http.Request) {
	actor, err := a.currentUser(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var req donation.Request
	if !a.decode(w, r, &req) {
		return
	}
	res, err := a.Donations.Submit(r.Context(), donation.SubmitInput{
		Actor:          actor,
		CampaignID:     chi.URLParam(r, "id"),
		Request:        req,
		IdempotencyKey: r.Header.Get(IdempotencyKeyHeader),
		Locale:         middleware.LocaleFromContext(r.Context()),
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, envelope{
		Success: true,
		Data: donationReceiptDTO{
			Donation:      toDonationDTO(res.Donation),
			TransactionID: res.TransactionID,
			Replayed:      res.Replayed,
		},
		Message: res.Message,
	})
}
