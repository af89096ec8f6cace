package model

import "time"

// User is a registered account. PasswordHash and PasswordSalt never leave
// the repository and service layers.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	PasswordSalt string
	Email        string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// Session is the authenticated identity for one request. It is resolved
// from the session token by the auth middleware and passed explicitly to
// operations that need it; there is no process-wide current user.
type Session struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	LoginAt  time.Time `json:"login_at"`
}
