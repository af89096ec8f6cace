package model

import "time"

// Holding is one recorded purchase of an asset by a user.
type Holding struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	BuyPrice     float64   `json:"buy_price"`
	PurchaseDate time.Time `json:"purchase_date"`
}

// TotalInvested returns the cost basis of the holding.
func (h Holding) TotalInvested() float64 {
	return h.Quantity * h.BuyPrice
}

// Valuation compares a holding's cost basis against a current price.
// Derived on demand, never stored.
type Valuation struct {
	CurrentPrice  float64 `json:"current_price"`
	TotalInvested float64 `json:"total_invested"`
	CurrentValue  float64 `json:"current_value"`
	ProfitLoss    float64 `json:"profit_loss"`
	ProfitLossPct float64 `json:"profit_loss_pct"`
	// PriceStale is true when the live fetch failed and the buy price was
	// substituted, which degrades profit/loss to zero for this holding.
	PriceStale bool `json:"price_stale"`
}

// Valuate computes the valuation of h at the given current price.
// ProfitLossPct is left at zero when the cost basis is zero, which cannot
// happen for holdings that passed validation (quantity and buy price > 0).
func (h Holding) Valuate(currentPrice float64, stale bool) Valuation {
	invested := h.TotalInvested()
	value := h.Quantity * currentPrice

	v := Valuation{
		CurrentPrice:  currentPrice,
		TotalInvested: invested,
		CurrentValue:  value,
		ProfitLoss:    value - invested,
		PriceStale:    stale,
	}
	if invested != 0 {
		v.ProfitLossPct = v.ProfitLoss / invested * 100
	}
	return v
}
