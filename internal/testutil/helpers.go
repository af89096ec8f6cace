package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/coingecko"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/repository"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/service"
)

// TestSessionKey is a fixed base64 fernet key used by tests only.
const TestSessionKey = "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="

// TestSessionTTL is the token lifetime used in tests.
const TestSessionTTL = time.Hour

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestAuthService(t *testing.T, db *sql.DB) *service.AuthService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	authService, err := service.NewAuthService(userRepo, TestSessionKey, TestSessionTTL)
	if err != nil {
		t.Fatalf("Failed to create auth service: %v", err)
	}
	return authService
}

func NewTestPriceService(t *testing.T, client coingecko.Client) *service.PriceService {
	t.Helper()

	return service.NewPriceService(client)
}

func NewTestWatchlistService(t *testing.T, client coingecko.Client) *service.WatchlistService {
	t.Helper()

	return service.NewWatchlistService(service.NewPriceService(client))
}

func NewTestPortfolioService(t *testing.T, db *sql.DB, client coingecko.Client) *service.PortfolioService {
	t.Helper()

	holdingRepo := repository.NewHoldingRepository(db)
	return service.NewPortfolioService(holdingRepo, service.NewPriceService(client))
}
