package client

import (
	"context"
	"net/url"
	"time"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/middleware"

	"github.com/go-resty/resty/v2"
)

type CoinMarketCapClient struct {
	RestyClient *resty.Client
}

func NewCoinMarketCapClient() *CoinMarketCapClient {
	c := resty.New().
		SetBaseURL("https://pro-api.coinmarketcap.com/v1").
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("Accept-Encoding", "gzip, br").
		OnAfterResponse(middleware.DecompressMiddleware)

	return &CoinMarketCapClient{RestyClient: c}
}

// Listings forwards the caller's query, with limit already capped at 100,
// to /cryptocurrency/listings/latest.
func (c *CoinMarketCapClient) Listings(ctx context.Context, apiKey string, query url.Values) (*resty.Response, error) {
	return c.RestyClient.R().
		SetContext(ctx).
		SetHeader("X-CMC_PRO_API_KEY", apiKey).
		SetQueryParamsFromValues(query).
		Get("/cryptocurrency/listings/latest")
}
