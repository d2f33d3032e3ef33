package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goldvest-ledger/config"
	apidocs "goldvest-ledger/docs/api"
	httpHandler "goldvest-ledger/internal/adapter/http/handler"
	"goldvest-ledger/internal/adapter/http/middleware"
	memStorage "goldvest-ledger/internal/adapter/storage/memory"
	pgStorage "goldvest-ledger/internal/adapter/storage/postgres"
	redisStorage "goldvest-ledger/internal/adapter/storage/redis"
	"goldvest-ledger/internal/core/ports"
	"goldvest-ledger/internal/core/rules"
	"goldvest-ledger/internal/service"
	"goldvest-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ./config.yaml or ./config/config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("provider", cfg.Provider.Kind).
		Bool("rate_limit", cfg.Redis.Enabled).
		Msg("Starting GoldVest ledger rules service")

	ctx := context.Background()

	// Rules. Validate has already checked these parse.
	settings, _ := cfg.Rules.Settings()
	investorCap, networkerCap, _ := cfg.Rules.CapMultipliers()
	engine := rules.New(settings)
	caps := service.CapPolicy{Investor: investorCap, Networker: networkerCap}

	// Account provider
	var (
		provider ports.AccountProvider
		checkers []ports.HealthChecker
	)
	switch cfg.Provider.Kind {
	case config.ProviderPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, logger.Component(log, "provider"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		provider = pgStorage.NewAccountRepo(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	default:
		demo := memStorage.NewDemoProvider()
		provider = demo
		checkers = append(checkers, memStorage.NewHealthCheck(demo))
		log.Warn().Int("accounts", demo.Len()).Msg("Using in-memory demo accounts")
	}

	// Rate limiting
	var rateLimitStore ports.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	quoteLog := logger.Component(log, "quotes")
	calculatorSvc := service.NewCalculatorService(engine, caps, quoteLog)
	accountSvc := service.NewAccountQuoteService(provider, engine, caps, quoteLog)

	gin.SetMode(cfg.Server.Mode)
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CalculatorSvc:  calculatorSvc,
		AccountSvc:     accountSvc,
		RateLimitStore: rateLimitStore,
		RateLimitRules: middleware.RateLimitRules(int64(cfg.RateLimit.Requests), cfg.RateLimit.Window),
		HealthCheckers: checkers,
		OpenAPISpec:    apidocs.OpenAPI,
		Logger:         logger.Component(log, "http"),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
