package service

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/coingecko"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/model"
)

// PriceService is the single entry point for live price lookups. Concurrent
// requests for the same symbol (a manual refresh racing the scheduled one,
// or a watchlist refresh overlapping a portfolio valuation) are collapsed
// into one provider call, so the rate-limit budget is not spent twice on
// identical work.
type PriceService struct {
	client coingecko.Client
	group  singleflight.Group
}

// NewPriceService creates a new PriceService backed by the given provider client.
func NewPriceService(client coingecko.Client) *PriceService {
	return &PriceService{client: client}
}

// GetPrice fetches the current price record for a ticker symbol.
func (s *PriceService) GetPrice(ctx context.Context, symbol string) (model.PriceRecord, error) {
	sym := coingecko.NormalizeSymbol(symbol)

	v, err, _ := s.group.Do(sym, func() (interface{}, error) {
		return s.client.FetchPrice(ctx, sym)
	})
	if err != nil {
		return model.PriceRecord{}, err
	}
	return v.(model.PriceRecord), nil
}
