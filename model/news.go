package model

// NewsItem is one search hit, reduced to what the dashboard renders.
type NewsItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewsResponse is the gateway's /api/news/tavily payload.
type NewsResponse struct {
	News []NewsItem `json:"news"`
}

// --- TAVILY SEARCH ---

type TavilySearchRequest struct {
	Query      string `json:"query"`
	Topic      string `json:"topic"`
	MaxResults int    `json:"max_results"`
}

type TavilySearchResponse struct {
	Results []TavilyResult `json:"results"`
}

type TavilyResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewNewsSearchRequest builds the fixed "<symbol> crypto news" query.
func NewNewsSearchRequest(symbol string) TavilySearchRequest {
	return TavilySearchRequest{
		Query:      symbol + " crypto news",
		Topic:      "news",
		MaxResults: 10,
	}
}
