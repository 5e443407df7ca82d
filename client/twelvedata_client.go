package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

type TwelveDataClient struct {
	RestyClient *resty.Client
}

func NewTwelveDataClient() *TwelveDataClient {
	c := resty.New().
		SetBaseURL("https://api.twelvedata.com").
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")

	return &TwelveDataClient{RestyClient: c}
}

// TimeSeries fetches bars for a crypto pair. The quote currency is fixed:
// the dashboard always charts against USD.
func (c *TwelveDataClient) TimeSeries(ctx context.Context, apiKey, symbol, interval, outputSize string) (*resty.Response, error) {
	return c.RestyClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":     symbol + "/USD",
			"interval":   interval,
			"outputsize": outputSize,
			"apikey":     apiKey,
		}).
		Get("/time_series")
}
