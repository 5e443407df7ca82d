package model

import "fmt"

// CMCListingsResponse mirrors the fields we consume from
// /v1/cryptocurrency/listings/latest.
type CMCListingsResponse struct {
	Status CMCStatus    `json:"status"`
	Data   []CMCListing `json:"data"`
}

type CMCStatus struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

type CMCListing struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Slug    string `json:"slug"`
	CmcRank int    `json:"cmc_rank"`
	Quote   struct {
		USD CMCQuote `json:"USD"`
	} `json:"quote"`
}

// CMCQuote carries the USD market figures. Missing fields decode to 0,
// which is kept as an acceptable domain value.
type CMCQuote struct {
	Price            float64 `json:"price"`
	Volume24h        float64 `json:"volume_24h"`
	PercentChange1h  float64 `json:"percent_change_1h"`
	PercentChange24h float64 `json:"percent_change_24h"`
	PercentChange7d  float64 `json:"percent_change_7d"`
	MarketCap        float64 `json:"market_cap"`
}

// ToCoin reshapes one CoinMarketCap listing into this system's field names.
func (l CMCListing) ToCoin() Coin {
	logo := PlaceholderLogoURL
	if l.Slug != "" {
		logo = fmt.Sprintf("https://cryptologos.cc/logos/%s/%s-icon.svg", l.Slug, l.Slug)
	}

	rank := l.CmcRank
	if rank <= 0 {
		rank = UnrankedSentinel
	}

	return Coin{
		ID:               l.ID,
		Name:             l.Name,
		Symbol:           l.Symbol,
		Logo:             logo,
		CurrentPrice:     l.Quote.USD.Price,
		Volume24h:        l.Quote.USD.Volume24h,
		PercentChange1h:  l.Quote.USD.PercentChange1h,
		PercentChange24h: l.Quote.USD.PercentChange24h,
		PercentChange7d:  l.Quote.USD.PercentChange7d,
		MarketCap:        l.Quote.USD.MarketCap,
		CmcRank:          rank,
	}
}
