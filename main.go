// File: littlenest/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"littlenest/config"
	"littlenest/database"
	bookingRepoPkg "littlenest/database/repository/booking"
	childRepoPkg "littlenest/database/repository/child"
	providerRepoPkg "littlenest/database/repository/provider"
	"littlenest/handlers"
	"littlenest/middleware"
	"littlenest/routes"
	"littlenest/services/booking"
	"littlenest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	mongoClient, err := database.Connect(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(cfg.DatabaseName)

	redisClient, err := utils.NewRedisClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
	}

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo(db)
	chRepo := childRepoPkg.NewMongoChildRepo(db)
	bkRepo := bookingRepoPkg.NewMongoBookingRepo(db)

	// services.
	engine := &booking.DefaultAvailabilityEngine{
		Repo:   bkRepo,
		Logger: logger,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings:  bkRepo,
		Providers: provRepo,
		Children:  chRepo,
		Engine:    engine,
		Lock:      utils.NewBookingLock(redisClient, cfg.BookingLockTTL),
		Logger:    logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(gin.Logger())
	router.Use(middleware.RateLimit(cfg.MaxRequestsPerMin, logger))

	routes.RegisterBookingRoutes(router, bookingHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then close the handles we
	// opened, in reverse order.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("redis close failed", zap.Error(err))
	}
	if err := database.Close(mongoClient); err != nil {
		logger.Error("mongo disconnect failed", zap.Error(err))
	}
}
