package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"campusfund/internal/http/handlers"
	"campusfund/internal/middleware"
)

// Options carries the router settings that come from configuration.
type Options struct {
	JWTSecret          string
	CORSAllowedOrigins []string
	DefaultLocale      string
	CountryLookup      middleware.CountryLookup
	RateLimitPerMinute int
	Static             http.Handler
}

func NewRouter(app *handlers.App, logger zerolog.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Logger(logger),
		chimw.Recoverer,
		middleware.CORS(opts.CORSAllowedOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	limit := opts.RateLimitPerMinute
	if limit <= 0 {
		limit = 30
	}
	donateLimit := middleware.RateLimit(limit, time.Minute)
	authLimit := middleware.RateLimit(limit, time.Minute)
	optionalAuth := middleware.OptionalAuthJWT(opts.JWTSecret)
	requireAuth := middleware.AuthJWT(opts.JWTSecret)

	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static", opts.Static))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", app.ListCampaigns)
			r.With(optionalAuth).Post("/", app.CreateCampaign)
			r.Get("/featured", app.FeaturedCampaigns)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", app.GetCampaign)
				r.Get("/donations", app.ListDonations)
				r.With(donateLimit, optionalAuth).Post("/donate", app.SubmitDonation)
				r.Get("/updates", app.ListUpdates)
				r.With(requireAuth).Post("/updates", app.PostUpdate)
				r.With(requireAuth).Post("/images", app.UploadImage)
			})
		})

		r.Get("/categories", app.Categories)
		r.Get("/stats", app.Stats)

		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimit)
			r.Post("/login", app.Login)
			r.Post("/register", app.Register)
		})
		r.With(requireAuth).Get("/me", app.Me)
	})

	return r
}
