package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/client"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/customerrors"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/rs/zerolog/log"
)

type NewsService interface {
	SearchNews(ctx context.Context, symbol string) ([]model.NewsItem, error)
}

type NewsServiceImpl struct {
	client *client.TavilyClient
	apiKey string
}

func NewNewsService(c *client.TavilyClient, apiKey string) NewsService {
	return &NewsServiceImpl{
		client: c,
		apiKey: apiKey,
	}
}

// SearchNews runs the fixed "<symbol> crypto news" search and reduces the
// hits to {title, url} pairs. Upstream ranking order is kept.
func (s *NewsServiceImpl) SearchNews(ctx context.Context, symbol string) ([]model.NewsItem, error) {
	if s.apiKey == "" {
		return nil, &customerrors.ConfigurationError{Provider: customerrors.Tavily}
	}

	resp, err := s.client.Search(ctx, s.apiKey, model.NewNewsSearchRequest(symbol))
	if err != nil {
		log.Error().Err(err).Str("symbol", symbol).Msg("tavily request failed")
		return nil, customerrors.WrapTransport(customerrors.Tavily, err)
	}
	if !resp.IsSuccess() {
		return nil, customerrors.NewUpstreamError(customerrors.Tavily, resp.StatusCode(), resp.Body())
	}

	var payload model.TavilySearchResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse tavily json: %w", err)
	}

	news := make([]model.NewsItem, 0, len(payload.Results))
	for _, result := range payload.Results {
		news = append(news, model.NewsItem{Title: result.Title, URL: result.URL})
	}
	return news, nil
}
