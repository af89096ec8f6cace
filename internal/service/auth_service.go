package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/apperrors"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/model"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/repository"
)

// AuthService handles registration, login, and session token issuance.
// Session tokens are fernet-encrypted and carry the session payload, so no
// server-side session table is needed; expiry is enforced by the token TTL.
type AuthService struct {
	userRepo *repository.UserRepository
	keys     []*fernet.Key
	ttl      time.Duration
}

// NewAuthService creates a new AuthService. The key must be a base64 fernet
// key; tokens older than ttl are rejected.
func NewAuthService(userRepo *repository.UserRepository, key string, ttl time.Duration) (*AuthService, error) {
	k, err := fernet.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("invalid session key: %w", err)
	}
	return &AuthService{
		userRepo: userRepo,
		keys:     []*fernet.Key{k},
		ttl:      ttl,
	}, nil
}

// Register creates a new user account with a salted password hash.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (model.User, error) {
	salt, err := newSalt()
	if err != nil {
		return model.User{}, fmt.Errorf("failed to generate salt: %w", err)
	}

	user := model.User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(username),
		PasswordHash: hashPassword(password, salt),
		PasswordSalt: salt,
		Email:        strings.TrimSpace(email),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.InsertUser(ctx, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Login verifies credentials and returns a session token plus the decoded
// session. A wrong username and a wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, model.Session, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err == apperrors.ErrUserNotFound {
		return "", model.Session{}, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return "", model.Session{}, err
	}

	computed := hashPassword(password, user.PasswordSalt)
	if subtle.ConstantTimeCompare([]byte(computed), []byte(user.PasswordHash)) != 1 {
		return "", model.Session{}, apperrors.ErrInvalidCredentials
	}

	session := model.Session{
		UserID:   user.ID,
		Username: user.Username,
		LoginAt:  time.Now().UTC(),
	}

	token, err := s.issueToken(session)
	if err != nil {
		return "", model.Session{}, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, session.LoginAt); err != nil {
		return "", model.Session{}, err
	}

	return token, session, nil
}

// DecodeToken verifies a session token and returns the session it carries.
// Returns apperrors.ErrInvalidSessionToken for malformed, tampered, or
// expired tokens.
func (s *AuthService) DecodeToken(token string) (model.Session, error) {
	payload := fernet.VerifyAndDecrypt([]byte(token), s.ttl, s.keys)
	if payload == nil {
		return model.Session{}, apperrors.ErrInvalidSessionToken
	}

	var session model.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return model.Session{}, apperrors.ErrInvalidSessionToken
	}
	return session, nil
}

// GetProfile returns the profile details for an authenticated session.
func (s *AuthService) GetProfile(ctx context.Context, session model.Session) (model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return model.User{}, err
	}
	// Credential fields stay inside the service layer.
	user.PasswordHash = ""
	user.PasswordSalt = ""
	return user, nil
}

func (s *AuthService) issueToken(session model.Session) (string, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}
	token, err := fernet.EncryptAndSign(payload, s.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return string(token), nil
}

// hashPassword derives a hex-encoded SHA-256 digest of salt+password.
func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

func newSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
