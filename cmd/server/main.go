package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/coingecko"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/config"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/database"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/ratelimit"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/repository"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/scheduler"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)

	// Create price provider client behind the shared rate limiter
	limiter := ratelimit.New(cfg.Provider.RequestDelay)
	providerClient := coingecko.NewPriceClient(cfg.Provider.BaseURL, limiter)

	// Create services
	systemService := service.NewSystemService(db)
	authService, err := service.NewAuthService(userRepo, cfg.Session.Key, cfg.Session.TTL)
	if err != nil {
		log.Fatalf("Failed to create auth service: %v", err)
	}
	priceService := service.NewPriceService(providerClient)
	watchlistService := service.NewWatchlistService(priceService)
	portfolioService := service.NewPortfolioService(holdingRepo, priceService)

	// Seed the default watchlist in the background; each fetch pays the
	// rate-limiter delay, so this must not hold up startup.
	go watchlistService.Seed(context.Background(), cfg.Watchlist.DefaultSymbols)

	// Arm the periodic refresh
	refreshScheduler := scheduler.New(cfg.Refresh.Interval, watchlistService)
	refreshScheduler.Start()
	defer refreshScheduler.Stop()

	// Create router
	router := api.NewRouter(systemService, authService, priceService, watchlistService, portfolioService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:        cfg.Server.Addr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// Fetch paths pay the provider rate-limit delay per symbol, so a
		// refresh over a long watchlist needs a generous write window.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
