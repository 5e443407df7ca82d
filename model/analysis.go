package model

// AnalyzeRequest is the POST /api/ai/analyze-crypto body. Indicator fields
// arrive either as numbers or as "N/A" strings and are embedded verbatim
// into the commentary prompt.
type AnalyzeRequest struct {
	Symbol           string     `json:"symbol"`
	CurrentPrice     float64    `json:"currentPrice"`
	PercentChange24h float64    `json:"percentChange24h"`
	MarketCap        float64    `json:"marketCap"`
	RSI              Metric     `json:"rsi"`
	MACD             Metric     `json:"macd"`
	SMA50            Metric     `json:"sma50"`
	SMA200           Metric     `json:"sma200"`
	Volume           Metric     `json:"volume"`
	News             []NewsItem `json:"news"`
}

// AnalyzeResponse wraps the generated commentary.
type AnalyzeResponse struct {
	Analysis string `json:"analysis"`
}
