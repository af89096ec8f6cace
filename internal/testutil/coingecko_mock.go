package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/coingecko"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/model"
)

// MockPriceClient is a mock implementation of coingecko.Client for testing.
// It returns predefined records instead of making actual API calls and is
// safe for concurrent use.
type MockPriceClient struct {
	mu sync.Mutex

	// Records maps normalized symbols to the record to return.
	Records map[string]model.PriceRecord
	// SymbolErrors maps normalized symbols to an error to return for them.
	SymbolErrors map[string]error
	// Err, when set, is returned for every symbol without a SymbolErrors entry.
	Err error
	// FetchCount tracks how many times FetchPrice was called.
	FetchCount int
	// FetchedSymbols records the order in which symbols were fetched.
	FetchedSymbols []string
}

// NewMockPriceClient creates a mock with no configured data. Unconfigured
// symbols get a generated record priced at 100.
func NewMockPriceClient() *MockPriceClient {
	return &MockPriceClient{
		Records:      make(map[string]model.PriceRecord),
		SymbolErrors: make(map[string]error),
	}
}

// FetchPrice returns the configured record or error for the symbol.
func (m *MockPriceClient) FetchPrice(_ context.Context, symbol string) (model.PriceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sym := coingecko.NormalizeSymbol(symbol)
	m.FetchCount++
	m.FetchedSymbols = append(m.FetchedSymbols, sym)

	if err, ok := m.SymbolErrors[sym]; ok {
		return model.PriceRecord{}, err
	}
	if m.Err != nil {
		return model.PriceRecord{}, m.Err
	}
	if record, ok := m.Records[sym]; ok {
		return record, nil
	}
	return MakePriceRecord(sym, 100, 0), nil
}

// WithPrice configures the record returned for a symbol.
func (m *MockPriceClient) WithPrice(symbol string, price, change24h float64) *MockPriceClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	sym := coingecko.NormalizeSymbol(symbol)
	m.Records[sym] = MakePriceRecord(sym, price, change24h)
	return m
}

// WithSymbolError configures an error returned for one symbol.
func (m *MockPriceClient) WithSymbolError(symbol string, err error) *MockPriceClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SymbolErrors[coingecko.NormalizeSymbol(symbol)] = err
	return m
}

// WithError configures the mock to return the specified error for all symbols.
func (m *MockPriceClient) WithError(err error) *MockPriceClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
	return m
}

// MakePriceRecord builds a record for a symbol with its registry display
// name and the current time.
func MakePriceRecord(symbol string, price, change24h float64) model.PriceRecord {
	sym := coingecko.NormalizeSymbol(symbol)
	return model.PriceRecord{
		Symbol:    sym,
		Name:      coingecko.ResolveName(sym),
		Price:     price,
		Change24h: change24h,
		UpdatedAt: time.Now().UTC(),
	}
}
