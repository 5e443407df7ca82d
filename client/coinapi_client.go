package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

type CoinApiClient struct {
	RestyClient *resty.Client
}

func NewCoinApiClient() *CoinApiClient {
	c := resty.New().
		SetBaseURL("https://rest.coinapi.io/v1").
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")

	return &CoinApiClient{RestyClient: c}
}

// DailyHistory fetches 1DAY OHLCV bars for a CoinAPI symbol id.
func (c *CoinApiClient) DailyHistory(ctx context.Context, apiKey, symbolID, timeStart, timeEnd string) (*resty.Response, error) {
	return c.RestyClient.R().
		SetContext(ctx).
		SetHeader("X-CoinAPI-Key", apiKey).
		SetQueryParams(map[string]string{
			"symbol_id":  symbolID,
			"time_start": timeStart,
			"time_end":   timeEnd,
		}).
		Get("/ohlcv/1DAY/history")
}
