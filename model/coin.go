package model

// UnrankedSentinel is the rank assigned to coins CoinMarketCap does not rank.
// Sorting ascending by rank pushes these after every ranked coin.
const UnrankedSentinel = 9999

// PlaceholderLogoURL is served when a listing has no slug to derive a logo from.
const PlaceholderLogoURL = "https://cryptologos.cc/logos/placeholder-logo.png"

// Coin is one entry of the reshaped listings payload.
type Coin struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Symbol           string  `json:"symbol"`
	Logo             string  `json:"logo"`
	CurrentPrice     float64 `json:"currentPrice"`
	Volume24h        float64 `json:"volume24h"`
	PercentChange1h  float64 `json:"percentChange1h"`
	PercentChange24h float64 `json:"percentChange24h"`
	PercentChange7d  float64 `json:"percentChange7d"`
	MarketCap        float64 `json:"marketCap"`
	CmcRank          int     `json:"cmcRank"`
}

// Rank returns the coin's sort rank, mapping a missing rank to the sentinel.
func (c Coin) Rank() int {
	if c.CmcRank <= 0 {
		return UnrankedSentinel
	}
	return c.CmcRank
}
