package coingecko

// SimplePriceResponse represents the raw JSON response from the CoinGecko
// simple-price endpoint. The body is a flat object keyed by asset
// identifier:
//
//	{"bitcoin": {"usd": 43250.5, "usd_24h_change": 2.3}}
//
// Both fields are pointers so a missing price can be told apart from a
// zero price. The 24h-change field is optional and defaults to zero when
// absent.
type SimplePriceResponse map[string]AssetPrice

// AssetPrice holds the USD spot price and 24-hour change for one asset.
type AssetPrice struct {
	USD          *float64 `json:"usd"`
	USD24hChange *float64 `json:"usd_24h_change"`
}
