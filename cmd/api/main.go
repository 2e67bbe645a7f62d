package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetline/internal/config"
	"meetline/internal/database"
	"meetline/internal/handlers"
	"meetline/internal/meeting"
	"meetline/internal/server"
	"meetline/internal/services"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Initialize structured logging
	log.SetPrefix("[API] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting %s v%s", cfg.App.Name, cfg.App.Version)
	log.Printf("Environment: debug=%v, port=%s, host=%s", cfg.App.Debug, cfg.App.Port, cfg.App.Host)

	// Initialize database
	log.Println("Initializing database connection...")
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		log.Println("Closing database connections...")
		if sqlDB, err := database.GetDB().DB(); err == nil {
			if closeErr := sqlDB.Close(); closeErr != nil {
				log.Printf("Error closing database: %v", closeErr)
			}
		}
	}()

	// Build the immutable reference catalog and service instances
	log.Println("Initializing services...")
	catalog := meeting.NewCatalog(cfg.App.PublicBaseURL)
	healthSvc := services.NewHealthService(cfg.App.Name)
	emailSvc := services.NewEmailService(&cfg.Email)
	meetingSvc := services.NewMeetingService(database.GetDB(), emailSvc)
	referenceSvc := services.NewReferenceService(catalog)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port)
	srv := server.New(cfg, addr,
		handlers.NewHealthHandler(healthSvc),
		handlers.NewReferenceHandler(referenceSvc),
		handlers.NewMeetingHandler(meetingSvc),
	)

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server failed to start: %v", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v. Starting graceful shutdown...", sig)
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Printf("Error during graceful shutdown: %v", err)
	}

	log.Println("Server shutdown complete")
}
