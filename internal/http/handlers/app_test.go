package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"campusfund/internal/domain"
)

func TestFailMapsErrors(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"validation", domain.NewValidationError("amount", "Amount is required"), http.StatusBadRequest, "validation_failed"},
		{"not found", fmt.Errorf("load: %w", domain.ErrNotFound), http.StatusNotFound, "not_found"},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "conflict"},
		{"payment", fmt.Errorf("%w: card declined", domain.ErrPaymentFailed), http.StatusBadGateway, "payment_failed"},
		{"unexpected", errors.New("connection reset by peer"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			app.fail(rr, httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil), tc.err)
			if rr.Code != tc.code {
				t.Fatalf("status = %d, want %d", rr.Code, tc.code)
			}
			var env envelope
			if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Success || env.Error != tc.kind {
				t.Fatalf("envelope = %+v, want error %q", env, tc.kind)
			}
			if strings.Contains(env.Message, "connection reset") || strings.Contains(env.Message, "card declined") {
				t.Fatalf("message leaks internals: %q", env.Message)
			}
		})
	}
}

func TestFailReportsFieldDetails(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	var ve domain.ValidationError
	ve.Add("amount", "Minimum donation amount is $5")
	ve.Add("donorEmail", "Please enter a valid email address")

	rr := httptest.NewRecorder()
	app.fail(rr, httptest.NewRequest(http.MethodPost, "/", nil), &ve)

	var env envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Details) != 2 || env.Details[1].Field != "donorEmail" {
		t.Fatalf("details = %+v", env.Details)
	}
}

func TestFailCancelledRequest(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	rr := httptest.NewRecorder()
	app.fail(rr, httptest.NewRequest(http.MethodPost, "/", nil), context.Canceled)
	if rr.Code != statusClientClosedRequest {
		t.Fatalf("status = %d, want %d", rr.Code, statusClientClosedRequest)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestDecodeTypeMismatchBecomesFieldError(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	var dst struct {
		Anonymous *bool `json:"anonymous"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"anonymous":"yes"}`))
	rr := httptest.NewRecorder()
	if app.decode(rr, req, &dst) {
		t.Fatalf("decode() = true for mistyped field")
	}
	var env envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rr.Code != http.StatusBadRequest || len(env.Details) != 1 || env.Details[0].Field != "anonymous" {
		t.Fatalf("got %d %+v", rr.Code, env)
	}
}

func TestDonationDTOHidesDonor(t *testing.T) {
	donor := "4"
	d := domain.Donation{
		ID:         "d1",
		DonorID:    &donor,
		DonorName:  "James Wilson",
		DonorEmail: "james.wilson@gmail.com",
		Amount:     250,
		Anonymous:  true,
	}
	raw, err := json.Marshal(toDonationDTO(d))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, leaked := range []string{"James", "gmail", "donorId", "donorEmail"} {
		if strings.Contains(body, leaked) {
			t.Fatalf("anonymous donation leaks %q: %s", leaked, body)
		}
	}
	if !strings.Contains(body, `"donorName":"Anonymous Donor"`) {
		t.Fatalf("missing masked name: %s", body)
	}

	d.Anonymous = false
	pub := toDonationDTO(d)
	if pub.DonorID == nil || *pub.DonorID != "4" || pub.DonorName != "James Wilson" {
		t.Fatalf("public donation = %+v", pub)
	}
}

func TestCampaignDTODerivedFields(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := domain.Campaign{
		ID:       "1",
		Goal:     25000,
		Raised:   18750,
		Deadline: now.Add(36 * time.Hour),
		Creator:  &domain.User{ID: "2", Name: "Dr. Michael Chen", Email: "michael.chen@university.edu", PasswordHash: "hash"},
	}
	dto := toCampaignDTO(c, now)
	if dto.ProgressPercentage != 75 || dto.DaysLeft != 2 {
		t.Fatalf("progress=%d daysLeft=%d", dto.ProgressPercentage, dto.DaysLeft)
	}
	if dto.Images == nil || dto.Tags == nil || dto.Donations == nil || dto.Updates == nil {
		t.Fatalf("collections must encode as empty lists: %+v", dto)
	}
	raw, _ := json.Marshal(dto)
	if strings.Contains(string(raw), "michael.chen@") || strings.Contains(string(raw), "hash") {
		t.Fatalf("creator leaks private fields: %s", raw)
	}
}

func TestOpenAPIDocumentIsValidJSON(t *testing.T) {
	app := &App{}
	rr := httptest.NewRecorder()
	app.OpenAPIJSON(rr, httptest.NewRequest(http.MethodGet, "/v1/openapi.json", nil))

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("openapi.json is not valid JSON: %v", err)
	}
	if _, ok := doc.Paths["/v1/campaigns/{id}/donate"]["post"]; !ok {
		t.Fatalf("donate operation missing from document")
	}
	list, _ := doc.Paths["/v1/campaigns"]["get"].(map[string]any)
	responses, _ := list["responses"].(map[string]any)
	if _, ok := responses["400"]; ok {
		t.Fatalf("campaign listing should not document a filter error")
	}

	etag := rr.Header().Get("ETag")
	req := httptest.NewRequest(http.MethodGet, "/v1/openapi.json", nil)
	req.Header.Set("If-None-Match", etag)
	rr = httptest.NewRecorder()
	app.OpenAPIJSON(rr, req)
	if rr.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", rr.Code)
	}
}
