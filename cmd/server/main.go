package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"inkbooking/config"
	_ "inkbooking/docs"
	delivery "inkbooking/internal/delivery/http"
	"inkbooking/internal/delivery/http/controllers"
	"inkbooking/internal/delivery/http/middleware"
	"inkbooking/internal/repository/postgres"
	"inkbooking/internal/services"
)

// @title inkbooking API
// @version 1.0
// @description Tattoo artist directory and booking intake API.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}
	cancel()

	artistRepo := postgres.NewArtistRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	artistService := services.NewArtistService(artistRepo)
	bookingService := services.NewBookingService(artistRepo, bookingRepo)

	artistController := controllers.NewArtistController(logger, artistService)
	bookingController := controllers.NewBookingController(logger, bookingService)

	mux := delivery.NewRouter(artistController, bookingController)

	var handler http.Handler = mux
	handler = middleware.Recover(logger, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.Metrics(handler)
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
