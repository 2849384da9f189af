package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trading-habit-engine/internal/habit/config"
	delivery "trading-habit-engine/internal/habit/delivery/http"
	_ "trading-habit-engine/internal/habit/docs"
	"trading-habit-engine/internal/habit/engine"
	"trading-habit-engine/internal/habit/predictor"
	"trading-habit-engine/internal/habit/repository"
	"trading-habit-engine/internal/habit/service"
	"trading-habit-engine/pkg/logger"
	"trading-habit-engine/pkg/postgres"
	"trading-habit-engine/pkg/redis"
	"trading-habit-engine/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the habit engine API",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Habit Service", logger.Field("name", cfg.App.Name), logger.Field("env", cfg.App.Env))

	var tradeOpts []service.TradeServiceOption

	// Alert archive
	if cfg.Database.Enabled {
		db, err := postgres.NewDB(postgres.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			DBName:          cfg.Database.DBName,
			SSLMode:         cfg.Database.SSLMode,
			TimeZone:        cfg.Database.TimeZone,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
		}
		if sqlDB, err := db.DB.DB(); err == nil {
			defer sqlDB.Close()
		}
		tradeOpts = append(tradeOpts, service.WithAlertRepository(repository.NewAlertRepository(db.DB)))
	}

	// Alert event stream
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
		tradeOpts = append(tradeOpts, service.WithAlertStream(repository.NewAlertStreamRepository(redisClient.Client, cfg.Redis.StreamMaxLen)))
	}

	// Initialize AI provider
	var aiRepo repository.AIRepository
	if cfg.GeminiEnabled() {
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
		}
		aiRepo, err = repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI repository", logger.ErrorField(err))
		}
	} else {
		appLogger.Warn("Gemini API key not configured, static explanations only")
	}

	var notifier telegram.Notifier
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
		tradeOpts = append(tradeOpts, service.WithNotifier(notifier))
	}

	// Predictor
	habitPredictor := predictor.New(appLogger)
	habitPredictor.LoadModels(cfg.Predictor.ModelDir)

	// Initialize services
	habitEngine := engine.New(cfg.Engine.EngineConfig(), appLogger)
	explanationSvc := service.NewExplanationService(cfg, appLogger, aiRepo)
	tradeSvc := service.NewTradeService(habitEngine, explanationSvc, appLogger, tradeOpts...)
	chartSvc := service.NewChartService(tradeSvc, habitPredictor)

	var digestSvc service.DigestService
	if cfg.Digest.Enabled && notifier != nil {
		digestSvc = service.NewDigestService(cfg.Digest.Schedule, tradeSvc, notifier, appLogger)
		if err := digestSvc.Start(); err != nil {
			appLogger.Fatal("Failed to start digest", logger.ErrorField(err))
		}
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	delivery.RegisterMiddleware(e, cfg.API.CORSOrigins, appLogger)

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")
	delivery.NewTradeHandler(tradeSvc, appLogger).RegisterRoutes(apiV1.Group("/trades"))
	delivery.NewPredictionHandler(habitPredictor, appLogger).RegisterRoutes(apiV1.Group("/predict"))
	delivery.NewChartHandler(chartSvc, appLogger).RegisterRoutes(apiV1.Group("/charts"))
	delivery.NewSystemHandler(cfg.App.Name, habitPredictor, explanationSvc, tradeSvc).RegisterRoutes(e)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}
	if digestSvc != nil {
		digestSvc.Stop(shutdownCtx)
	}
	tradeSvc.Close()

	appLogger.Info("Server exiting")
}

// @title AI Financial Habit Engine API
// @version 3.0.0
// @description Detects emotional trading biases (panic selling, FOMO, concentration) in real time and provides AI-powered behavioural coaching.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{Use: "habit-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-habit.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing habit-service CLI: %s\n", err)
		os.Exit(1)
	}
}
