package validation

import (
	"strings"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/request"
)

// ValidateRegister checks a registration payload.
func ValidateRegister(req request.RegisterRequest) error {
	errors := make(map[string]string)

	// Required fields
	if strings.TrimSpace(req.Username) == "" {
		errors["username"] = "username is required"
	} else if len(req.Username) > 50 {
		errors["username"] = "username must be 50 characters or less"
	}

	if req.Password == "" {
		errors["password"] = "password is required"
	} else if len(req.Password) < 6 {
		errors["password"] = "password must be at least 6 characters"
	}

	// Optional but has constraints
	if req.Email != "" {
		if len(req.Email) > 100 {
			errors["email"] = "email must be 100 characters or less"
		} else if !strings.Contains(req.Email, "@") {
			errors["email"] = "email must be a valid address"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateLogin checks a login payload.
func ValidateLogin(req request.LoginRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Username) == "" {
		errors["username"] = "username is required"
	}
	if req.Password == "" {
		errors["password"] = "password is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
