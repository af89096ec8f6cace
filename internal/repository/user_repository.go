package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/apperrors"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/model"
)

// UserRepository provides data access methods for the users table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// InsertUser stores a new user. Returns apperrors.ErrDuplicateUsername when
// the username is already taken.
func (r *UserRepository) InsertUser(ctx context.Context, user *model.User) error {
	query := `
          INSERT INTO users (id, username, password_hash, password_salt, email, created_at)
          VALUES (?, ?, ?, ?, ?, ?)
      `
	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.PasswordSalt,
		user.Email,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByUsername retrieves a user by username, including credential fields.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	query := `
          SELECT id, username, password_hash, password_salt, email, created_at, last_login
          FROM users
          WHERE username = ?
      `
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

// GetUserByID retrieves a user by ID.
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (model.User, error) {
	query := `
          SELECT id, username, password_hash, password_salt, email, created_at, last_login
          FROM users
          WHERE id = ?
      `
	return r.scanUser(r.db.QueryRowContext(ctx, query, userID))
}

// UpdateLastLogin stamps the user's last successful login time.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	result, err := r.db.ExecContext(ctx, "UPDATE users SET last_login = ? WHERE id = ?", at, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var lastLogin sql.NullTime

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.PasswordSalt,
		&u.Email,
		&u.CreatedAt,
		&lastLogin,
	)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to scan users table results: %w", err)
	}

	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}
