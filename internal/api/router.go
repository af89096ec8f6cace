package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/middleware"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/config"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	authService *service.AuthService,
	priceService *service.PriceService,
	watchlistService *service.WatchlistService,
	portfolioService *service.PortfolioService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	requireSession := custommiddleware.SessionAuth(authService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/auth", func(r chi.Router) {
			authHandler := handlers.NewAuthHandler(authService)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.With(requireSession).Post("/logout", authHandler.Logout)
			r.With(requireSession).Get("/profile", authHandler.Profile)
		})

		r.Route("/prices", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(priceService)
			r.Get("/{symbol}", priceHandler.Get)
		})

		r.Route("/watchlist", func(r chi.Router) {
			watchlistHandler := handlers.NewWatchlistHandler(watchlistService)
			r.Get("/", watchlistHandler.List)
			r.Post("/", watchlistHandler.Add)
			r.Post("/refresh", watchlistHandler.Refresh)
			r.Delete("/{symbol}", watchlistHandler.Remove)
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Use(requireSession)
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/", portfolioHandler.Valuate)
			r.Post("/", portfolioHandler.Create)
			r.Delete("/{holdingId}", portfolioHandler.Delete)
			r.Put("/{holdingId}", portfolioHandler.UpdateQuantity)
		})
	})

	return r
}
