package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/middleware"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/request"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/response"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/apperrors"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/service"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/validation"
)

// AuthHandler handles registration, login, logout, and profile requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterResponse represents a successful registration
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Register creates a new user account
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateRegister(req); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.RespondValidationError(w, vErr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password, req.Email)
	if err == apperrors.ErrDuplicateUsername {
		response.RespondError(w, http.StatusConflict, "username already taken", nil)
		return
	}
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to register user",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusCreated, RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token    string    `json:"token"`
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	LoginAt  time.Time `json:"login_at"`
}

// Login authenticates a user and returns a session token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateLogin(req); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.RespondValidationError(w, vErr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	token, session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err == apperrors.ErrInvalidCredentials {
		response.RespondError(w, http.StatusUnauthorized, "invalid username or password", nil)
		return
	}
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to log in",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Token:    token,
		UserID:   session.UserID,
		Username: session.Username,
		LoginAt:  session.LoginAt,
	})
}

// Logout acknowledges a logout. Session tokens are stateless, so the
// client discards the token; expiry is enforced by the token TTL.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNoContent, nil)
}

// ProfileResponse represents the authenticated user's profile
type ProfileResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Profile returns the profile of the authenticated user
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	user, err := h.authService.GetProfile(r.Context(), session)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to retrieve profile",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	})
}
