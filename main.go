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

	"github.com/inkwell/inkwell-be/internal/api"
	"github.com/inkwell/inkwell-be/internal/auth"
	"github.com/inkwell/inkwell-be/internal/config"
	"github.com/inkwell/inkwell-be/internal/database"
	"github.com/inkwell/inkwell-be/internal/logger"
	"github.com/inkwell/inkwell-be/internal/monitoring"
	"github.com/inkwell/inkwell-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	// Set up services
	userService := services.NewUserService(db)
	postService := services.NewPostService(db)
	sessionService := services.NewSessionService(db, cfg.SessionMaxAge)

	policy := auth.CookiePolicy{
		Name:   cfg.CookieName,
		MaxAge: cfg.SessionMaxAge,
		Secure: cfg.SecureCookies,
	}

	// Set up and run the background session sweeper
	sweeper, err := monitoring.NewSessionSweeper(sessionService, cfg.SweepSchedule)
	if err != nil {
		log.Fatalf("Failed to initialize session sweeper: %v", err)
	}
	go sweeper.Run()

	// Set up router
	router := api.NewRouter(userService, postService, sessionService, policy, cfg.ClientURL)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
