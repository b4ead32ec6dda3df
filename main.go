package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/kconstable/finance-tools/config"
	httpLayer "github.com/kconstable/finance-tools/http"
	"github.com/kconstable/finance-tools/repository"
	"github.com/kconstable/finance-tools/service"
)

func main() {
	cfg := config.NewConfig()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	var cache repository.CacheRepository = repository.NewMockCache()
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		logger.Infof("using redis cache at %s", cfg.RedisAddr)
	}

	var scenarioRepo repository.ScenarioRepository = repository.NewScenarioRepositoryMemory()
	if cfg.DBConn != "" {
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("Failed to ping database: %v", err)
		}
		scenarioRepo = repository.NewScenarioRepositoryPostgres(db)
		logger.Info("using postgres scenario repository")
	}

	amortizationService := service.NewAmortizationService(scenarioRepo, cache, logger)
	comparisonService := service.NewComparisonService(logger)
	equityService := service.NewEquityService(logger)

	amortizationHandler := httpLayer.NewAmortizationHandler(amortizationService)
	comparisonHandler := httpLayer.NewComparisonHandler(amortizationService, comparisonService)
	equityHandler := httpLayer.NewEquityHandler(amortizationService, equityService)
	scenarioHandler := httpLayer.NewScenarioHandler(scenarioRepo)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	r := mux.NewRouter()
	r.Handle("/mortgage/amortize",
		httpLayer.RateLimitMiddleware(rateLimiter, http.HandlerFunc(amortizationHandler.Amortize)),
	).Methods("POST")
	r.Handle("/mortgage/compare",
		httpLayer.RateLimitMiddleware(rateLimiter, http.HandlerFunc(comparisonHandler.Compare)),
	).Methods("POST")
	r.Handle("/mortgage/rent-vs-own",
		httpLayer.RateLimitMiddleware(rateLimiter, http.HandlerFunc(equityHandler.RentVsOwn)),
	).Methods("POST")
	r.Handle("/scenarios",
		httpLayer.RateLimitMiddleware(rateLimiter, http.HandlerFunc(scenarioHandler.Save)),
	).Methods("POST")
	r.Handle("/scenarios",
		httpLayer.RateLimitMiddleware(rateLimiter, http.HandlerFunc(scenarioHandler.List)),
	).Methods("GET")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("Error starting server: %v", err)
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server exited")
}
