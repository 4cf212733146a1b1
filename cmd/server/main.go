package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"obra/internal/db"
	"obra/internal/domain/backfill"
	"obra/internal/domain/financials"
	"obra/internal/domain/payroll"
	"obra/internal/domain/rates"
	"obra/internal/domain/wages"
	"obra/internal/platform/config"
	"obra/internal/platform/logging"
	backfillhandler "obra/internal/transport/http/handlers/backfill"
	financialshandler "obra/internal/transport/http/handlers/financials"
	payrollhandler "obra/internal/transport/http/handlers/payroll"
	"obra/internal/transport/http/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("db connect failed")
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.WithError(err).Fatal("migrations failed")
		}
	}

	feed := rates.NewHTTPFeed(cfg.RateFeedURL, cfg.RateFeedTimeout)
	rateResolver := rates.NewResolver(feed, rates.NewStore(pool), cfg.DefaultExchangeRate, cfg.RatePlausibleMin, log)
	wageResolver := wages.NewResolver(wages.NewStore(pool))

	payrollService := payroll.NewService(payroll.NewStore(pool), wageResolver)
	financialsService := financials.NewService(financials.NewStore(pool), rateResolver, wageResolver)
	backfillJob := backfill.NewJob(backfill.NewStore(pool), rateResolver, cfg.BackfillBatchSize, log)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recoverer(log))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		payrollhandler.NewHandler(payrollService).RegisterRoutes(r)
		financialshandler.NewHandler(financialsService).RegisterRoutes(r)
		backfillhandler.NewHandler(backfillJob).RegisterRoutes(r)
	})

	log.WithField("addr", cfg.Addr).Info("server listening")
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}
