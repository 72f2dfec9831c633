package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/rs/zerolog"

	"campusfund/internal/auth"
	"campusfund/internal/catalog"
	"campusfund/internal/domain"
	"campusfund/internal/donation"
	"campusfund/internal/middleware"
)

// statusClientClosedRequest is logged when the caller went away mid-request.
const statusClientClosedRequest = 499

const defaultMaxUploadBytes = 5 << 20

// App holds the services the HTTP handlers delegate to.
type App struct {
	Catalog        *catalog.Service
	Donations      *donation.Service
	Auth           *auth.Service
	Logger         zerolog.Logger
	MaxUploadBytes int64
	Now            func() time.Time
}

// NewApp builds the handler container.
func NewApp(cat *catalog.Service, donations *donation.Service, authSvc *auth.Service, logger zerolog.Logger) *App {
	return &App{
		Catalog:        cat,
		Donations:      donations,
		Auth:           authSvc,
		Logger:         logger,
		MaxUploadBytes: defaultMaxUploadBytes,
		Now:            time.Now,
	}
}

type fieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool          `json:"success"`
	Data    any           `json:"data,omitempty"`
	Summary any           `json:"summary,omitempty"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
	Details []fieldDetail `json:"details,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) ok(w http.ResponseWriter, code int, data any) {
	a.json(w, code, envelope{Success: true, Data: data})
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, envelope{Success: false, Error: kind, Message: message})
}

func (a *App) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Logger
}

// fail maps a service error onto the error envelope. Unexpected errors are
// logged and reported without internals.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		details := make([]fieldDetail, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			details = append(details, fieldDetail{Field: f.Field, Message: f.Message})
		}
		a.json(w, http.StatusBadRequest, envelope{
			Success: false,
			Error:   "validation_failed",
			Message: "Invalid input",
			Details: details,
		})
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrInvalidCredentials):
		a.error(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", "you cannot manage this campaign")
	case errors.Is(err, domain.ErrEmailTaken):
		a.error(w, http.StatusConflict, "conflict", "email already registered")
	case errors.Is(err, domain.ErrPaymentFailed):
		a.log(r).Warn().Err(err).Msg("payment failed")
		a.error(w, http.StatusBadGateway, "payment_failed", "payment could not be processed, please try again")
	case errors.Is(err, context.Canceled):
		a.log(r).Info().Str("path", r.URL.Path).Msg("request cancelled by client")
		w.WriteHeader(statusClientClosedRequest)
	default:
		a.log(r).Error().Err(err).Str("path", r.URL.Path).Msg("unexpected error")
		a.error(w, http.StatusInternalServerError, "internal", "something went wrong")
	}
}

// decode reads a JSON body. A value of the wrong JSON type is reported as a
// field validation error.
func (a *App) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			a.fail(w, r, domain.NewValidationError(typeErr.Field, fmt.Sprintf("%s must be a %s", typeErr.Field, jsonKind(typeErr.Type.Kind()))))
			return false
		}
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}

func jsonKind(k reflect.Kind) string {
	switch k {
	case reflect.Bool:
		return "boolean"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "number"
	case reflect.Slice:
		return "list"
	case reflect.Pointer:
		return "value"
	}
	return "string"
}

// currentUser resolves the session attached by the auth middleware. It
// returns nil for anonymous requests and ErrUnauthorized when the token names
// a user that no longer exists.
func (a *App) currentUser(r *http.Request) (*domain.User, error) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		return nil, nil
	}
	u, err := a.Auth.Me(r.Context(), userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	return u, err
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) requireUser(r *http.Request) (*domain.User, error) {
	u, err := a.currentUser(r)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}
