package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/coingecko"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/model"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/repository"
)

// CreateUser inserts a user directly through the repository. The password
// hash is a placeholder; tests that exercise login should register through
// the AuthService instead.
func CreateUser(t *testing.T, db *sql.DB, username string) model.User {
	t.Helper()

	user := model.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "unused-test-hash",
		PasswordSalt: "unused-test-salt",
		Email:        username + "@example.com",
		CreatedAt:    time.Now().UTC(),
	}

	userRepo := repository.NewUserRepository(db)
	if err := userRepo.InsertUser(context.Background(), &user); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateHolding inserts a holding for a user directly through the repository.
func CreateHolding(t *testing.T, db *sql.DB, userID, symbol string, quantity, buyPrice float64) model.Holding {
	t.Helper()

	sym := coingecko.NormalizeSymbol(symbol)
	holding := model.Holding{
		ID:           uuid.New().String(),
		UserID:       userID,
		Symbol:       sym,
		Name:         coingecko.ResolveName(sym),
		Quantity:     quantity,
		BuyPrice:     buyPrice,
		PurchaseDate: time.Now().UTC(),
	}

	holdingRepo := repository.NewHoldingRepository(db)
	if err := holdingRepo.InsertHolding(context.Background(), &holding); err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}
	return holding
}

// SessionFor builds a session for a previously created user.
func SessionFor(user model.User) model.Session {
	return model.Session{
		UserID:   user.ID,
		Username: user.Username,
		LoginAt:  time.Now().UTC(),
	}
}
