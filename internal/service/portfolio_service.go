package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/apperrors"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/coingecko"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/model"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/repository"
)

// PortfolioService handles holding CRUD and portfolio valuation against
// live prices.
type PortfolioService struct {
	holdingRepo *repository.HoldingRepository
	prices      *PriceService
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(holdingRepo *repository.HoldingRepository, prices *PriceService) *PortfolioService {
	return &PortfolioService{
		holdingRepo: holdingRepo,
		prices:      prices,
	}
}

// ValuatedHolding pairs a holding with its valuation at current prices.
type ValuatedHolding struct {
	Holding   model.Holding   `json:"holding"`
	Valuation model.Valuation `json:"valuation"`
}

// PortfolioValuation is the full valuated portfolio for one user.
type PortfolioValuation struct {
	Items         []ValuatedHolding `json:"items"`
	TotalInvested float64           `json:"total_invested"`
	TotalValue    float64           `json:"total_value"`
	ProfitLoss    float64           `json:"profit_loss"`
	// Warnings lists holdings that were valued at their buy price because
	// the live fetch failed. Their profit/loss reads as zero.
	Warnings []string `json:"warnings,omitempty"`
}

// AddHolding records a new purchase for the session's user. The display
// name is resolved from the symbol registry.
func (s *PortfolioService) AddHolding(ctx context.Context, session model.Session, symbol string, quantity, buyPrice float64) (model.Holding, error) {
	sym := coingecko.NormalizeSymbol(symbol)
	if sym == "" {
		return model.Holding{}, apperrors.ErrEmptySymbol
	}
	if quantity <= 0 {
		return model.Holding{}, apperrors.ErrNonPositiveQuantity
	}
	if buyPrice <= 0 {
		return model.Holding{}, apperrors.ErrNonPositiveBuyPrice
	}

	holding := model.Holding{
		ID:           uuid.New().String(),
		UserID:       session.UserID,
		Symbol:       sym,
		Name:         coingecko.ResolveName(sym),
		Quantity:     quantity,
		BuyPrice:     buyPrice,
		PurchaseDate: time.Now().UTC(),
	}

	if err := s.holdingRepo.InsertHolding(ctx, &holding); err != nil {
		return model.Holding{}, err
	}
	return holding, nil
}

// ListHoldings returns the session user's holdings without valuation.
func (s *PortfolioService) ListHoldings(ctx context.Context, session model.Session) ([]model.Holding, error) {
	return s.holdingRepo.GetHoldingsByUserID(ctx, session.UserID)
}

// Valuate fetches a current price for each of the user's holdings and
// computes per-holding and aggregate profit/loss. A failed fetch does not
// fail the batch: the holding is valued at its buy price (zero profit/loss)
// and a warning is recorded.
func (s *PortfolioService) Valuate(ctx context.Context, session model.Session) (PortfolioValuation, error) {
	holdings, err := s.holdingRepo.GetHoldingsByUserID(ctx, session.UserID)
	if err != nil {
		return PortfolioValuation{}, err
	}

	valuation := PortfolioValuation{Items: make([]ValuatedHolding, 0, len(holdings))}
	for _, h := range holdings {
		currentPrice := h.BuyPrice
		stale := false

		record, err := s.prices.GetPrice(ctx, h.Symbol)
		if err != nil || record.Price <= 0 {
			stale = true
			valuation.Warnings = append(valuation.Warnings,
				fmt.Sprintf("%s: using buy price, live price unavailable", h.Symbol))
		} else {
			currentPrice = record.Price
		}

		v := h.Valuate(currentPrice, stale)
		valuation.Items = append(valuation.Items, ValuatedHolding{Holding: h, Valuation: v})
		valuation.TotalInvested += v.TotalInvested
		valuation.TotalValue += v.CurrentValue
	}
	valuation.ProfitLoss = valuation.TotalValue - valuation.TotalInvested

	return valuation, nil
}

// DeleteHolding removes a holding after checking it belongs to the session's user.
func (s *PortfolioService) DeleteHolding(ctx context.Context, session model.Session, holdingID string) error {
	holding, err := s.holdingRepo.GetHoldingOnID(ctx, holdingID)
	if err != nil {
		return err
	}
	if holding.UserID != session.UserID {
		return apperrors.ErrNotOwner
	}
	return s.holdingRepo.DeleteHolding(ctx, holdingID)
}

// UpdateQuantity changes the quantity of a holding owned by the session's user.
func (s *PortfolioService) UpdateQuantity(ctx context.Context, session model.Session, holdingID string, quantity float64) error {
	if quantity <= 0 {
		return apperrors.ErrNonPositiveQuantity
	}

	holding, err := s.holdingRepo.GetHoldingOnID(ctx, holdingID)
	if err != nil {
		return err
	}
	if holding.UserID != session.UserID {
		return apperrors.ErrNotOwner
	}
	return s.holdingRepo.UpdateQuantity(ctx, holdingID, quantity)
}
