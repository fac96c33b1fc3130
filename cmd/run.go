package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"esportshub/api"
	"esportshub/auth"
	"esportshub/config"
	"esportshub/database"
	"esportshub/repository"
	"esportshub/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting esportshub API...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db)

	// Initialize services
	log.Println("Initializing services...")
	tokenService := auth.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(uowFactory, tokenService)
	teamService := service.NewTeamService(uowFactory)
	leagueService := service.NewLeagueService(uowFactory)
	tournamentService := service.NewTournamentService(uowFactory)
	log.Println("Services initialized successfully")

	// Initialize HTTP server
	server := api.NewServer(tokenService, authService, teamService, leagueService, tournamentService)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("API is listening on :%s in %s mode...", cfg.Port, cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		db.Close()
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Println("Shutting down API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during HTTP shutdown: %v", err)
	}

	db.Close()
	log.Println("Database connection closed")

	return nil
}

// Reconcile runs the standings repair pass and logs the outcome.
func Reconcile(ctx context.Context) error {
	cfg := config.Get()

	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	report, err := repository.ReconcileStandings(ctx, db)
	if err != nil {
		return err
	}

	log.Printf("Reconciliation complete: removed %d orphaned standings, created %d missing standings",
		report.OrphansRemoved, report.MissingCreated)
	return nil
}
