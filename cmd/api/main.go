package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"campusfund/internal/adapter/repo"
	"campusfund/internal/auth"
	"campusfund/internal/catalog"
	"campusfund/internal/domain"
	"campusfund/internal/donation"
	"campusfund/internal/http/handlers"
	httpapi "campusfund/internal/http/httpapi"
	"campusfund/internal/infra"
	"campusfund/internal/infra/geoip"
	"campusfund/internal/payment"
	"campusfund/internal/storage"
)

type repositories struct {
	campaigns  domain.CampaignRepository
	categories domain.CategoryRepository
	donations  domain.DonationRepository
	users      domain.UserRepository
	close      func()
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := repo.DefaultSeed(time.Now())
	if err := seed.HashPasswords(cfg.DemoPassword); err != nil {
		logger.Fatal().Err(err).Msg("failed to hash demo passwords")
	}

	repos, err := openRepositories(ctx, cfg, seed, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer repos.close()

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()

	files, err := storage.NewFileStore(cfg.StorageDir, cfg.StorageBaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure storage")
	}

	catalogSvc := catalog.NewService(repos.campaigns, repos.categories, files, logger)
	donationSvc := donation.NewService(repos.campaigns, repos.donations, payment.NewSimulated(cfg.PaymentDelay), logger)
	authSvc := auth.NewService(repos.users, cfg.JWTSecret, cfg.TokenTTL, logger)

	app := handlers.NewApp(catalogSvc, donationSvc, authSvc, logger)
	router := httpapi.NewRouter(app, logger, httpapi.Options{
		JWTSecret:          cfg.JWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		DefaultLocale:      cfg.DefaultLocale,
		CountryLookup:      resolver.Lookup(),
		RateLimitPerMinute: cfg.RateLimitPerMin,
		Static:             files.Handler(),
	})

	server := infra.NewHTTPServer(cfg, router)

	// The memory store has no separate worker process, so deadlines are
	// swept in-process.
	if !cfg.UsesPostgres() {
		go sweep(ctx, catalogSvc, cfg.SweepInterval, logger)
	}

	go func() {
		logger.Info().Str("addr", server.Addr()).Bool("postgres", cfg.UsesPostgres()).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func openRepositories(ctx context.Context, cfg *infra.Config, seed repo.Seed, logger zerolog.Logger) (*repositories, error) {
	if !cfg.UsesPostgres() {
		store := repo.NewMemoryStore(seed)
		logger.Info().Int("campaigns", len(seed.Campaigns)).Msg("using in-memory store")
		return &repositories{
			campaigns:  store.Campaigns(),
			categories: store,
			donations:  store.Donations(),
			users:      store.Users(),
			close:      func() {},
		}, nil
	}

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	runner := infra.NewSQLRunner(pool, logger)
	if cfg.DBAutoMigrate {
		if err := repo.Migrate(ctx, runner, seed); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info().Msg("schema migrated")
	}
	campaigns := repo.NewCampaignRepository(runner)
	return &repositories{
		campaigns:  campaigns,
		categories: campaigns,
		donations:  repo.NewDonationRepository(runner),
		users:      repo.NewUserRepository(runner),
		close:      pool.Close,
	}, nil
}

func sweep(ctx context.Context, svc *catalog.Service, every time.Duration, logger zerolog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.CloseExpired(ctx); err != nil && ctx.Err() == nil {
				logger.Error().Err(err).Msg("close expired campaigns failed")
			}
		}
	}
}
