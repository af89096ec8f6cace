package coingecko

import "strings"

// symbolToID maps ticker symbols to CoinGecko asset identifiers.
// Loaded once, read-only thereafter.
var symbolToID = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"LTC":   "litecoin",
	"XRP":   "ripple",
	"ADA":   "cardano",
	"DOT":   "polkadot",
	"LINK":  "chainlink",
	"BCH":   "bitcoin-cash",
	"XLM":   "stellar",
	"DOGE":  "dogecoin",
	"UNI":   "uniswap",
	"AVAX":  "avalanche-2",
	"MATIC": "matic-network",
	"ATOM":  "cosmos",
	"SOL":   "solana",
	"BNB":   "binancecoin",
	"SHIB":  "shiba-inu",
	"TRX":   "tron",
	"DAI":   "dai",
	"USDT":  "tether",
}

// symbolToName maps ticker symbols to display names.
var symbolToName = map[string]string{
	"BTC":   "Bitcoin",
	"ETH":   "Ethereum",
	"LTC":   "Litecoin",
	"XRP":   "XRP",
	"ADA":   "Cardano",
	"DOT":   "Polkadot",
	"LINK":  "Chainlink",
	"BCH":   "Bitcoin Cash",
	"XLM":   "Stellar",
	"DOGE":  "Dogecoin",
	"UNI":   "Uniswap",
	"AVAX":  "Avalanche",
	"MATIC": "Polygon",
	"ATOM":  "Cosmos",
	"SOL":   "Solana",
	"BNB":   "Binance Coin",
	"SHIB":  "Shiba Inu",
	"TRX":   "Tron",
	"DAI":   "Dai",
	"USDT":  "Tether",
}

// NormalizeSymbol trims and uppercases a ticker symbol. Stores and caches
// key their entries on the normalized form.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// ResolveID returns the CoinGecko asset identifier for a ticker symbol.
// Lookup is case-insensitive. Unmapped symbols fall back to the lowercased
// symbol itself, which matches CoinGecko's convention for many assets.
func ResolveID(symbol string) string {
	if id, ok := symbolToID[strings.ToUpper(symbol)]; ok {
		return id
	}
	return strings.ToLower(symbol)
}

// ResolveName returns the display name for a ticker symbol. Unmapped
// symbols fall back to the uppercased symbol.
func ResolveName(symbol string) string {
	if name, ok := symbolToName[strings.ToUpper(symbol)]; ok {
		return name
	}
	return strings.ToUpper(symbol)
}
