// Command worker completes active campaigns whose deadline has passed. It
// polls the PostgreSQL store on SWEEP_INTERVAL until interrupted.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"campusfund/internal/adapter/repo"
	"campusfund/internal/catalog"
	"campusfund/internal/infra"
)

type sweeper struct {
	ctx      context.Context
	catalog  *catalog.Service
	logger   zerolog.Logger
	interval time.Duration
}

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)
	if !cfg.UsesPostgres() {
		logger.Fatal().Msg("worker: DATABASE_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	campaigns := repo.NewCampaignRepository(infra.NewSQLRunner(pool, logger))
	w := &sweeper{
		ctx:      ctx,
		catalog:  catalog.NewService(campaigns, campaigns, nil, logger),
		logger:   logger,
		interval: cfg.SweepInterval,
	}

	if err := w.Run(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("worker: stopped with error")
	}
	logger.Info().Msg("worker: stopped")
}

func (w *sweeper) Run() error {
	w.logger.Info().Dur("interval", w.interval).Msg("worker: started")
	for {
		w.tick()
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case <-time.After(w.interval):
		}
	}
}

func (w *sweeper) tick() {
	ids, err := w.catalog.CloseExpired(w.ctx)
	if err != nil {
		if w.ctx.Err() == nil {
			w.logger.Error().Err(err).Msg("worker: sweep failed")
		}
		return
	}
	w.logger.Debug().Int("closed", len(ids)).Msg("worker: sweep done")
}
