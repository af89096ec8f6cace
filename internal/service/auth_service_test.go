package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/apperrors"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/testutil"
)

func TestAuthService_Register(t *testing.T) {
	t.Run("creates user with hashed credentials", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)

		// Execute
		user, err := authService.Register(context.Background(), "alice", "secret123", "alice@example.com")

		// Assert
		if err != nil {
			t.Fatalf("Register() returned unexpected error: %v", err)
		}
		if user.Username != "alice" {
			t.Errorf("Expected username alice, got %s", user.Username)
		}
		if user.PasswordHash == "" || user.PasswordHash == "secret123" {
			t.Error("Expected password to be stored hashed")
		}
		if user.PasswordSalt == "" {
			t.Error("Expected a per-user salt")
		}
	})

	t.Run("salts hashes per user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)

		first, err := authService.Register(context.Background(), "alice", "secret123", "alice@example.com")
		if err != nil {
			t.Fatalf("Register() returned unexpected error: %v", err)
		}
		second, err := authService.Register(context.Background(), "bob", "secret123", "bob@example.com")
		if err != nil {
			t.Fatalf("Register() returned unexpected error: %v", err)
		}

		if first.PasswordHash == second.PasswordHash {
			t.Error("Expected identical passwords to hash differently per user")
		}
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)

		if _, err := authService.Register(context.Background(), "alice", "secret123", "alice@example.com"); err != nil {
			t.Fatalf("Register() returned unexpected error: %v", err)
		}

		_, err := authService.Register(context.Background(), "alice", "other456", "other@example.com")
		if !errors.Is(err, apperrors.ErrDuplicateUsername) {
			t.Fatalf("Expected ErrDuplicateUsername, got %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("returns decodable token for valid credentials", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)
		user, err := authService.Register(context.Background(), "alice", "secret123", "alice@example.com")
		if err != nil {
			t.Fatalf("Register() returned unexpected error: %v", err)
		}

		// Execute
		token, session, err := authService.Login(context.Background(), "alice", "secret123")

		// Assert
		if err != nil {
			t.Fatalf("Login() returned unexpected error: %v", err)
		}
		if token == "" {
			t.Fatal("Expected a session token")
		}
		if session.UserID != user.ID || session.Username != "alice" {
			t.Errorf("Unexpected session payload: %+v", session)
		}

		decoded, err := authService.DecodeToken(token)
		if err != nil {
			t.Fatalf("DecodeToken() returned unexpected error: %v", err)
		}
		if decoded.UserID != user.ID || decoded.Username != "alice" {
			t.Errorf("Decoded session does not match: %+v", decoded)
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)
		if _, err := authService.Register(context.Background(), "alice", "secret123", "alice@example.com"); err != nil {
			t.Fatalf("Register() returned unexpected error: %v", err)
		}

		_, _, err := authService.Login(context.Background(), "alice", "wrong")
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects unknown username with the same error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)

		_, _, err := authService.Login(context.Background(), "nobody", "secret123")
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("records last login time", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)
		if _, err := authService.Register(context.Background(), "alice", "secret123", "alice@example.com"); err != nil {
			t.Fatalf("Register() returned unexpected error: %v", err)
		}

		// Execute
		_, session, err := authService.Login(context.Background(), "alice", "secret123")
		if err != nil {
			t.Fatalf("Login() returned unexpected error: %v", err)
		}

		// Assert
		profile, err := authService.GetProfile(context.Background(), session)
		if err != nil {
			t.Fatalf("GetProfile() returned unexpected error: %v", err)
		}
		if profile.LastLogin == nil {
			t.Fatal("Expected last login to be recorded")
		}
	})
}

func TestAuthService_DecodeToken(t *testing.T) {
	t.Run("rejects malformed token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)

		_, err := authService.DecodeToken("not-a-token")
		if !errors.Is(err, apperrors.ErrInvalidSessionToken) {
			t.Fatalf("Expected ErrInvalidSessionToken, got %v", err)
		}
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)
		if _, err := authService.Register(context.Background(), "alice", "secret123", "alice@example.com"); err != nil {
			t.Fatalf("Register() returned unexpected error: %v", err)
		}
		token, _, err := authService.Login(context.Background(), "alice", "secret123")
		if err != nil {
			t.Fatalf("Login() returned unexpected error: %v", err)
		}

		_, err = authService.DecodeToken(token[:len(token)-2])
		if !errors.Is(err, apperrors.ErrInvalidSessionToken) {
			t.Fatalf("Expected ErrInvalidSessionToken, got %v", err)
		}
	})
}

func TestAuthService_GetProfile(t *testing.T) {
	t.Run("blanks credential fields", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)
		user, err := authService.Register(context.Background(), "alice", "secret123", "alice@example.com")
		if err != nil {
			t.Fatalf("Register() returned unexpected error: %v", err)
		}

		// Execute
		profile, err := authService.GetProfile(context.Background(), testutil.SessionFor(user))

		// Assert
		if err != nil {
			t.Fatalf("GetProfile() returned unexpected error: %v", err)
		}
		if profile.PasswordHash != "" || profile.PasswordSalt != "" {
			t.Error("Expected credential fields to be blank")
		}
		if profile.Email != "alice@example.com" {
			t.Errorf("Expected email alice@example.com, got %s", profile.Email)
		}
	})

	t.Run("returns ErrUserNotFound for stale session", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		authService := testutil.NewTestAuthService(t, db)
		session := testutil.SessionFor(testutil.CreateUser(t, db, "alice"))
		session.UserID = "00000000-0000-0000-0000-000000000000"

		_, err := authService.GetProfile(context.Background(), session)
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			t.Fatalf("Expected ErrUserNotFound, got %v", err)
		}
	})
}
