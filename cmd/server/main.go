// Command server runs the kith account service: the deletion request
// authority plus its supporting stores and collaborators. main wires
// dependencies and keeps the server lifecycle small; business logic lives in
// internal packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	accounthandler "github.com/kith-app/kith/internal/account/handler"
	accountservice "github.com/kith-app/kith/internal/account/service"
	accountstore "github.com/kith-app/kith/internal/account/store"
	"github.com/kith-app/kith/internal/entitlement"
	"github.com/kith-app/kith/internal/identity"
	"github.com/kith-app/kith/internal/identity/revocation"
	"github.com/kith-app/kith/internal/platform/config"
	"github.com/kith-app/kith/internal/platform/httpserver"
	"github.com/kith-app/kith/internal/platform/logger"
	"github.com/kith-app/kith/internal/platform/metrics"
	"github.com/kith-app/kith/internal/platform/middleware"
	"github.com/kith-app/kith/internal/platform/postgres"
	platformredis "github.com/kith-app/kith/internal/platform/redis"
	"github.com/kith-app/kith/pkg/platform/audit"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	// Stores: PostgreSQL when configured, in-memory for local development.
	var (
		identityStore identity.Store
		purgeStore    accountstore.PurgeStore
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		identityStore = identity.NewPostgres(db)
		purgeStore = accountstore.NewPostgres(db)
	} else {
		log.Warn("KITH_DATABASE_URL not set; using in-memory stores")
		identityStore = identity.NewMemoryStore()
		purgeStore = accountstore.NewMemoryStore()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	tokens := identity.NewTokenService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	directory := identity.NewDirectory(tokens, identityStore)

	serviceCred, err := identity.NewServiceCredential(cfg.ServiceCredential)
	if err != nil {
		log.Error("service credential missing", "error", err)
		os.Exit(1)
	}
	admin, err := identity.NewAdmin(identityStore, serviceCred)
	if err != nil {
		log.Error("admin capability construction failed", "error", err)
		os.Exit(1)
	}

	var (
		revoker           accountservice.TokenRevoker
		revocationChecker middleware.TokenRevocationChecker
	)
	if redisClient != nil {
		trl := revocation.NewRedisTRL(redisClient.Client)
		revoker, revocationChecker = trl, trl
	} else {
		trl := revocation.NewMemoryTRL()
		revoker, revocationChecker = trl, trl
	}

	var reconciler *entitlement.Reconciler
	if cfg.EntitlementURL != "" {
		var cache entitlement.Cache
		if redisClient != nil {
			cache = entitlement.NewRedisCache(redisClient.Client)
		} else {
			cache = entitlement.NewMemoryCache()
		}
		// Status reads go through the cache; the reconciler invalidates the
		// same cache when it dissociates an alias.
		entClient := entitlement.NewCachedClient(
			entitlement.NewHTTPClient(cfg.EntitlementURL, cfg.EntitlementAPIKey),
			cache,
		)
		reconciler = entitlement.NewReconciler(entClient, cache, log)
	}

	var auditor audit.Publisher = audit.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := audit.NewKafkaPublisher(ctx, cfg.KafkaBrokers, cfg.AuditTopic, log)
		if err != nil {
			log.Error("audit publisher setup failed", "error", err)
			os.Exit(1)
		}
		defer kafkaPublisher.Close()
		auditor = kafkaPublisher
	}

	m := metrics.New()

	opts := []accountservice.Option{
		accountservice.WithTokenRevoker(revoker),
		accountservice.WithMetrics(m),
	}
	if reconciler != nil {
		opts = append(opts, accountservice.WithReconciler(reconciler))
	}
	svc := accountservice.New(directory, purgeStore, admin, auditor, log, opts...)

	router := chi.NewRouter()
	accounthandler.New(svc, identity.NewMiddlewareAdapter(tokens), revocationChecker, log).Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting kith server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
