package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"github.com/supermax-promo/cupom-backend/api/routes"
	"github.com/supermax-promo/cupom-backend/internal/config"
	"github.com/supermax-promo/cupom-backend/internal/handlers"
	"github.com/supermax-promo/cupom-backend/internal/logger"
	mongorepo "github.com/supermax-promo/cupom-backend/internal/repositories/mongodb"
	"github.com/supermax-promo/cupom-backend/internal/services"
	"github.com/supermax-promo/cupom-backend/pkg/mongodb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zap.L().Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			zap.L().Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	couponRepo, err := mongorepo.NewCouponRepository(ctx, db)
	if err != nil {
		zap.L().Fatal("Failed to initialize coupon repository", zap.Error(err))
	}
	counterRepo := mongorepo.NewCounterRepository(db)
	winnerRepo := mongorepo.NewWinnerRepository(db)
	scratchRepo := mongorepo.NewScratchCouponRepository(db)
	settingsRepo := mongorepo.NewSettingsRepository(db)

	// Services
	sequenceService := services.NewSequenceService(counterRepo, cfg.Sequence.Prefix, cfg.Sequence.Pad)
	couponService := services.NewCouponService(couponRepo, scratchRepo, sequenceService)
	drawService := services.NewDrawService(couponRepo, winnerRepo, settingsRepo, nil)
	scratchService := services.NewScratchCouponService(scratchRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	authService := services.NewAuthService(cfg)

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		CouponHandler:   handlers.NewCouponHandler(couponService),
		DrawHandler:     handlers.NewDrawHandler(drawService),
		ScratchHandler:  handlers.NewScratchCouponHandler(scratchService),
		SettingsHandler: handlers.NewSettingsHandler(settingsService),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		zap.L().Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("listen failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("server exiting")
}
