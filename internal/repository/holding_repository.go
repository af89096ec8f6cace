package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/apperrors"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// InsertHolding stores a new holding for a user.
func (r *HoldingRepository) InsertHolding(ctx context.Context, h *model.Holding) error {
	query := `
          INSERT INTO holding (id, user_id, symbol, name, quantity, buy_price, purchase_date)
          VALUES (?, ?, ?, ?, ?, ?, ?)
      `
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.UserID,
		h.Symbol,
		h.Name,
		h.Quantity,
		h.BuyPrice,
		h.PurchaseDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}
	return nil
}

// GetHoldingsByUserID retrieves all holdings owned by a user, oldest purchase
// first. Returns an empty slice when the user has no holdings.
func (r *HoldingRepository) GetHoldingsByUserID(ctx context.Context, userID string) ([]model.Holding, error) {
	query := `
          SELECT id, user_id, symbol, name, quantity, buy_price, purchase_date
          FROM holding
          WHERE user_id = ?
          ORDER BY purchase_date, id
      `
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}
	for rows.Next() {
		var h model.Holding
		err := rows.Scan(
			&h.ID,
			&h.UserID,
			&h.Symbol,
			&h.Name,
			&h.Quantity,
			&h.BuyPrice,
			&h.PurchaseDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}
		holdings = append(holdings, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// GetHoldingOnID retrieves a single holding by its ID.
func (r *HoldingRepository) GetHoldingOnID(ctx context.Context, holdingID string) (model.Holding, error) {
	query := `
          SELECT id, user_id, symbol, name, quantity, buy_price, purchase_date
          FROM holding
          WHERE id = ?
      `
	var h model.Holding
	err := r.db.QueryRowContext(ctx, query, holdingID).Scan(
		&h.ID,
		&h.UserID,
		&h.Symbol,
		&h.Name,
		&h.Quantity,
		&h.BuyPrice,
		&h.PurchaseDate,
	)
	if err == sql.ErrNoRows {
		return model.Holding{}, apperrors.ErrHoldingNotFound
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to query holding: %w", err)
	}
	return h, nil
}

// DeleteHolding removes a holding by ID.
func (r *HoldingRepository) DeleteHolding(ctx context.Context, holdingID string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM holding WHERE id = ?", holdingID)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

// UpdateQuantity updates the quantity of an existing holding in place.
func (r *HoldingRepository) UpdateQuantity(ctx context.Context, holdingID string, quantity float64) error {
	result, err := r.db.ExecContext(ctx, "UPDATE holding SET quantity = ? WHERE id = ?", quantity, holdingID)
	if err != nil {
		return fmt.Errorf("failed to update holding quantity: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}
