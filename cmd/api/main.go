package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trip-platform/internal/accommodation"
	"trip-platform/internal/activity"
	"trip-platform/internal/auth"
	"trip-platform/internal/config"
	"trip-platform/internal/eventlog"
	"trip-platform/internal/httpapi"
	"trip-platform/internal/identity"
	"trip-platform/internal/obs"
	"trip-platform/internal/registry"
	"trip-platform/internal/restaurant"
	"trip-platform/internal/session"
	"trip-platform/internal/tourism"
	"trip-platform/pkg/logger"
	"trip-platform/pkg/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env, cfg.App.ServiceName)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	verifier, err := auth.NewVerifier(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	db, err := utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
	if err != nil {
		log.Error("postgres init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// Identity pipeline: verify locally, resolve against the user service,
	// shadow into our own table.
	resolver := identity.NewResolver(cfg.Upstream.UserServiceURL, cfg.Upstream.IdentityTimeout, identity.NewPostgresRepo(db))
	authenticator := auth.NewAuthenticator(verifier, resolver)

	// Activity pipeline: classify, allocate a case, record to the logs API.
	sessions := session.NewRedisStore(rdb, cfg.Session.TTL)
	alloc := activity.NewAllocator(sessions, cfg.Session.CookieName, int(cfg.Session.TTL.Seconds()))
	recorder := activity.NewRecorder(eventlog.NewClient(cfg.Upstream.EventLogURL, cfg.Upstream.EventLogTimeout))
	table := activity.NewTable()

	handlers := httpapi.Handlers{
		Accommodations: accommodation.NewService(accommodation.NewPostgresRepo(db)),
		Restaurants:    restaurant.NewService(restaurant.NewPostgresRepo(db)),
		Tourism:        tourism.NewService(tourism.NewPostgresRepo(db)),
	}

	obs.Init()

	// Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))
	r.Use(obs.Middleware())
	r.Use(activity.Middleware(table, alloc, recorder, authenticator))

	registerRoutes(r, handlers, table, authenticator)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	// Registration is best effort; a missing agent never blocks serving.
	var registrar *registry.Registrar
	serviceID := cfg.App.ServiceName + "-1"
	if cfg.Consul.Enabled {
		registrar = registry.NewRegistrar(cfg.Consul.Addr)
		if err := registrar.Register(rootCtx, registry.Service{
			Name:    cfg.App.ServiceName,
			ID:      serviceID,
			Address: cfg.App.ServiceHost,
			Port:    cfg.App.Port,
			Tags:    []string{"web", "api"},
			Check:   registry.HTTPCheck(cfg.App.ServiceHost, cfg.App.Port),
		}); err != nil {
			log.Warn("consul registration failed", "err", err)
		} else {
			log.Info("registered with consul", "service", cfg.App.ServiceName)
		}
	}

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if registrar != nil {
		if err := registrar.Deregister(shutdownCtx, serviceID); err != nil {
			log.Warn("consul deregistration failed", "err", err)
		}
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
