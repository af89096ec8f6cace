package service

import (
	"context"
	"log"
	"sync"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/apperrors"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/coingecko"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/model"
)

// WatchlistService owns the in-memory ordered list of tracked symbols and
// their latest price snapshots. Insertion order is display order.
//
// Refreshes may overlap (scheduled plus manual); each entry carries a
// version counter and a refresh only writes its result back if the entry
// has not been updated since the refresh read it. Losing writers drop
// their result, so an older fetch can never clobber a newer one.
type WatchlistService struct {
	prices *PriceService

	mu      sync.Mutex
	entries []*model.WatchlistEntry
}

// NewWatchlistService creates an empty watchlist backed by the given price service.
func NewWatchlistService(prices *PriceService) *WatchlistService {
	return &WatchlistService{prices: prices}
}

// RefreshFailure records one symbol that could not be refreshed.
type RefreshFailure struct {
	Symbol string `json:"symbol"`
	Reason string `json:"reason"`
}

// RefreshResult summarizes a RefreshAll pass. Symbols whose entry was
// updated by a competing refresh while this one was fetching are counted
// in Stale, not Updated.
type RefreshResult struct {
	Updated []string         `json:"updated"`
	Failed  []RefreshFailure `json:"failed"`
	Stale   []string         `json:"stale,omitempty"`
}

// AddSymbol starts tracking a symbol. The symbol is fetched first; on
// failure the watchlist is left unchanged and the fetch error is returned.
// Duplicates are rejected with apperrors.ErrDuplicateSymbol.
func (s *WatchlistService) AddSymbol(ctx context.Context, symbol string) (model.PriceRecord, error) {
	sym := coingecko.NormalizeSymbol(symbol)
	if sym == "" {
		return model.PriceRecord{}, apperrors.ErrEmptySymbol
	}

	s.mu.Lock()
	if s.find(sym) != nil {
		s.mu.Unlock()
		return model.PriceRecord{}, apperrors.ErrDuplicateSymbol
	}
	s.mu.Unlock()

	record, err := s.prices.GetPrice(ctx, sym)
	if err != nil {
		return model.PriceRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check: a concurrent AddSymbol for the same symbol may have won
	// while the fetch was in flight.
	if s.find(sym) != nil {
		return model.PriceRecord{}, apperrors.ErrDuplicateSymbol
	}

	s.entries = append(s.entries, &model.WatchlistEntry{
		Symbol:  sym,
		Record:  &record,
		Version: 1,
	})
	return record, nil
}

// RemoveSymbol stops tracking a symbol.
func (s *WatchlistService) RemoveSymbol(symbol string) error {
	sym := coingecko.NormalizeSymbol(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.Symbol == sym {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrSymbolNotTracked
}

// Entries returns a snapshot of the watchlist in insertion order.
func (s *WatchlistService) Entries() []model.WatchlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]model.WatchlistEntry, len(s.entries))
	for i, e := range s.entries {
		snapshot[i] = *e
	}
	return snapshot
}

// RefreshAll re-fetches every tracked symbol in list order. Each fetch pays
// the rate-limiter delay, so total wall time grows with the list length.
// One symbol's failure never aborts the rest; failed entries keep their
// previous record.
func (s *WatchlistService) RefreshAll(ctx context.Context) RefreshResult {
	type target struct {
		symbol  string
		version uint64
	}

	s.mu.Lock()
	targets := make([]target, len(s.entries))
	for i, e := range s.entries {
		targets[i] = target{symbol: e.Symbol, version: e.Version}
	}
	s.mu.Unlock()

	var result RefreshResult
	for _, t := range targets {
		record, err := s.prices.GetPrice(ctx, t.symbol)
		if err != nil {
			result.Failed = append(result.Failed, RefreshFailure{
				Symbol: t.symbol,
				Reason: err.Error(),
			})
			continue
		}

		switch s.applyRecord(t.symbol, t.version, record) {
		case applyUpdated:
			result.Updated = append(result.Updated, t.symbol)
		case applyStale:
			result.Stale = append(result.Stale, t.symbol)
		case applyRemoved:
			// Removed while the fetch was in flight; drop the result.
		}
	}
	return result
}

type applyOutcome int

const (
	applyUpdated applyOutcome = iota
	applyStale
	applyRemoved
)

// applyRecord writes a fetched record back to the entry it was read from,
// but only if the entry still exists and has not been updated since the
// refresh snapshotted it at readVersion. An older fetch can therefore
// never clobber a newer one.
func (s *WatchlistService) applyRecord(symbol string, readVersion uint64, record model.PriceRecord) applyOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.find(symbol)
	switch {
	case entry == nil:
		return applyRemoved
	case entry.Version != readVersion:
		return applyStale
	default:
		entry.Record = &record
		entry.Version++
		return applyUpdated
	}
}

// Seed adds the default symbols at startup, best effort. Failures are
// logged and skipped so one unreachable symbol cannot block startup.
func (s *WatchlistService) Seed(ctx context.Context, symbols []string) {
	for _, sym := range symbols {
		if _, err := s.AddSymbol(ctx, sym); err != nil {
			log.Printf("Skipping default symbol %s: %v", coingecko.NormalizeSymbol(sym), err)
		}
	}
}

// find returns the entry for a normalized symbol, or nil. Caller must hold mu.
func (s *WatchlistService) find(symbol string) *model.WatchlistEntry {
	for _, e := range s.entries {
		if e.Symbol == symbol {
			return e
		}
	}
	return nil
}
