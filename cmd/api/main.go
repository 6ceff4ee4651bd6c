package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fitstart/internal/config"
	"fitstart/internal/db"
	apihttp "fitstart/internal/http"
	"fitstart/internal/predictor"
	"fitstart/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	backend, err := db.OpenBackend(ctx, cfg)
	if err != nil {
		logger.Fatal("storage init", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer backend.Close()

	store := service.NewProfileStore(backend.KV)
	predictorClient := predictor.NewHTTPClient(cfg.PredictorURL, cfg.PredictorTimeout, logger)
	onboardingSvc := service.NewOnboardingService(logger, store)
	assessmentSvc := service.NewAssessmentService(logger, store, predictorClient)

	limiter := service.NewClassifyLimiter(cfg.ClassifyRateWindow, cfg.ClassifyRateMax)
	if backend.Redis != nil {
		limiter = service.NewRedisClassifyLimiter(backend.Redis, cfg.ClassifyRateWindow, cfg.ClassifyRateMax)
	}

	onboardingHandler := apihttp.NewOnboardingHandler(logger, onboardingSvc)
	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc, store, limiter)
	router := apihttp.NewRouter(logger, onboardingHandler, assessmentHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("store", cfg.StoreBackend),
		zap.String("predictor_url", cfg.PredictorURL),
		zap.Duration("predictor_timeout", cfg.PredictorTimeout),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
