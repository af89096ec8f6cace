package model

import "time"

// PriceRecord is a snapshot of one asset's spot price and 24-hour change.
// Records are never mutated in place; a fresh record replaces the old one
// in whichever store owns it.
type PriceRecord struct {
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Change24h float64   `json:"change_24h"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WatchlistEntry pairs a tracked symbol with its latest price snapshot.
// Record is nil until the first successful fetch. Version increments on
// every accepted update and is used to reject stale concurrent writes.
type WatchlistEntry struct {
	Symbol  string       `json:"symbol"`
	Record  *PriceRecord `json:"record,omitempty"`
	Version uint64       `json:"-"`
}
