package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

type CoinalyzeClient struct {
	RestyClient *resty.Client
}

func NewCoinalyzeClient() *CoinalyzeClient {
	c := resty.New().
		SetBaseURL("https://api.coinalyze.net/v1").
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")

	return &CoinalyzeClient{RestyClient: c}
}

// History fetches OHLCV bars for the given interval and unix range.
func (c *CoinalyzeClient) History(ctx context.Context, apiKey, symbols, interval, from, to string) (*resty.Response, error) {
	return c.RestyClient.R().
		SetContext(ctx).
		SetHeader("api_key", apiKey).
		SetQueryParams(map[string]string{
			"symbols":  symbols,
			"interval": interval,
			"from":     from,
			"to":       to,
		}).
		Get("/ohlcv-history")
}
