package client

import (
	"context"
	"time"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/go-resty/resty/v2"
)

type TavilyClient struct {
	RestyClient *resty.Client
}

func NewTavilyClient() *TavilyClient {
	c := resty.New().
		SetBaseURL("https://api.tavily.com").
		SetTimeout(10*time.Second).
		SetHeader("Content-Type", "application/json")

	return &TavilyClient{RestyClient: c}
}

// Search runs one news search.
func (c *TavilyClient) Search(ctx context.Context, apiKey string, req model.TavilySearchRequest) (*resty.Response, error) {
	return c.RestyClient.R().
		SetContext(ctx).
		SetAuthToken(apiKey).
		SetBody(req).
		Post("/search")
}
