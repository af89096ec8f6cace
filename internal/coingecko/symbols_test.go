package coingecko

import "testing"

func TestResolveID(t *testing.T) {
	t.Run("returns mapped id for known symbols", func(t *testing.T) {
		cases := map[string]string{
			"BTC":   "bitcoin",
			"ETH":   "ethereum",
			"AVAX":  "avalanche-2",
			"MATIC": "matic-network",
			"USDT":  "tether",
		}
		for symbol, want := range cases {
			if got := ResolveID(symbol); got != want {
				t.Errorf("ResolveID(%q) = %q, want %q", symbol, got, want)
			}
		}
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		for _, symbol := range []string{"btc", "Btc", "bTC"} {
			if got := ResolveID(symbol); got != "bitcoin" {
				t.Errorf("ResolveID(%q) = %q, want %q", symbol, got, "bitcoin")
			}
		}
	})

	t.Run("falls back to lowercased symbol when unmapped", func(t *testing.T) {
		if got := ResolveID("PEPE"); got != "pepe" {
			t.Errorf("ResolveID(%q) = %q, want %q", "PEPE", got, "pepe")
		}
	})
}

func TestResolveName(t *testing.T) {
	t.Run("returns display name for known symbols", func(t *testing.T) {
		cases := map[string]string{
			"BTC":   "Bitcoin",
			"bch":   "Bitcoin Cash",
			"MATIC": "Polygon",
			"xrp":   "XRP",
		}
		for symbol, want := range cases {
			if got := ResolveName(symbol); got != want {
				t.Errorf("ResolveName(%q) = %q, want %q", symbol, got, want)
			}
		}
	})

	t.Run("falls back to uppercased symbol when unmapped", func(t *testing.T) {
		if got := ResolveName("pepe"); got != "PEPE" {
			t.Errorf("ResolveName(%q) = %q, want %q", "pepe", got, "PEPE")
		}
	})
}

func TestNormalizeSymbol(t *testing.T) {
	cases := map[string]string{
		"btc":    "BTC",
		" eth ":  "ETH",
		"Doge":   "DOGE",
		"  sol":  "SOL",
		"MATIC ": "MATIC",
	}
	for in, want := range cases {
		if got := NormalizeSymbol(in); got != want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", in, got, want)
		}
	}
}
