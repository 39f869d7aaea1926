// File: roombook/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roombook/config"
	"roombook/database"
	bookingRepo "roombook/database/repository/booking"
	"roombook/handlers"
	"roombook/middleware"
	"roombook/routes"
	"roombook/services/booking"
	ai "roombook/services/intelligence"
	"roombook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const agendaCacheTTL = 30 * time.Minute

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// repository, selected once for the lifetime of the process.
	repo, err := bookingRepo.New(ctx, cfg, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize %s storage: %v", cfg.StorageBackend, err)
	}

	// services.
	agendaService := ai.NewDefaultAgendaService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	var drafter ai.AgendaDrafter = agendaService
	if utils.CacheClient != nil {
		drafter = &ai.CachedAgendaDrafter{
			Next:   agendaService,
			Store:  ai.NewRedisDraftStore(utils.CacheClient, agendaCacheTTL),
			Logger: logger,
		}
	}
	bookingService := booking.NewDefaultBookingService(repo, drafter, logger)

	// A failed initial load is logged by the service; start with an empty collection.
	_, _ = bookingService.Load(ctx)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(routes.CORS(cfg.AllowedOrigins()))
	router.Use(middleware.NewRateLimiter(cfg.MaxRequestsPerMin).Middleware(logger))

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	agendaHandler := handlers.NewAgendaHandler(bookingService, logger)

	handlerBundle := &handlers.HandlerBundle{
		ListBookings:    bookingHandler.ListBookings,
		CreateBooking:   bookingHandler.CreateBooking,
		RefreshBookings: bookingHandler.RefreshBookings,
		GetStats:        bookingHandler.GetStats,
		DraftAgenda:     agendaHandler.DraftAgendaHandler,
		Health:          handlers.NewHealthHandler(cfg.StorageBackend, repo),
	}
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server",
		zap.String("addr", srv.Addr),
		zap.String("backend", cfg.StorageBackend),
		zap.String("env", cfg.Env),
	)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	if err := agendaService.Close(); err != nil {
		logger.Warn("main: failed to close Gemini client", zap.Error(err))
	}
	if utils.CacheClient != nil {
		if err := utils.CacheClient.Close(); err != nil {
			logger.Warn("main: failed to close redis client", zap.Error(err))
		}
	}
	if err := database.Close(shutdownCtx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
