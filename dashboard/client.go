package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/go-resty/resty/v2"
)

// Fixed history fetch parameters: one daily bar, 200-point lookback.
const (
	historyInterval   = "1day"
	historyOutputSize = "200"
)

// GatewayClient talks to one deployed gateway. The base URL is the only
// client-facing configuration.
type GatewayClient struct {
	RestyClient *resty.Client
}

func NewGatewayClient(baseURL string) *GatewayClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")

	return &GatewayClient{RestyClient: c}
}

// Listings fetches the ranked coin list.
func (g *GatewayClient) Listings(ctx context.Context) ([]model.Coin, error) {
	resp, err := g.RestyClient.R().
		SetContext(ctx).
		Get("/api/cryptocurrency/listings/latest")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, gatewayError(resp)
	}

	var coins []model.Coin
	if err := json.Unmarshal(resp.Body(), &coins); err != nil {
		return nil, fmt.Errorf("failed to parse listings: %w", err)
	}
	return coins, nil
}

// DailyHistory fetches the daily price series for one symbol through the
// Twelve Data relay.
func (g *GatewayClient) DailyHistory(ctx context.Context, symbol string) (*model.TwelveDataSeries, error) {
	resp, err := g.RestyClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":     symbol,
			"interval":   historyInterval,
			"outputsize": historyOutputSize,
		}).
		Get("/api/cryptocurrency/ohlcv/twelvedata-historical")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, gatewayError(resp)
	}

	var series model.TwelveDataSeries
	if err := json.Unmarshal(resp.Body(), &series); err != nil {
		return nil, fmt.Errorf("failed to parse price history: %w", err)
	}
	return &series, nil
}

// Analyze requests the AI commentary for the given market figures.
func (g *GatewayClient) Analyze(ctx context.Context, req model.AnalyzeRequest) (string, error) {
	resp, err := g.RestyClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/ai/analyze-crypto")
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", gatewayError(resp)
	}

	var payload model.AnalyzeResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("failed to parse analysis: %w", err)
	}
	return payload.Analysis, nil
}

// News fetches the news list for one symbol.
func (g *GatewayClient) News(ctx context.Context, symbol string) ([]model.NewsItem, error) {
	resp, err := g.RestyClient.R().
		SetContext(ctx).
		SetQueryParam("symbol", symbol).
		Get("/api/news/tavily")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, gatewayError(resp)
	}

	var payload model.NewsResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse news: %w", err)
	}
	return payload.News, nil
}

// gatewayError decodes the gateway's {"error"} shape, falling back to the
// transport status line.
func gatewayError(resp *resty.Response) error {
	var payload model.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("API Error: %d - %s", resp.StatusCode(), payload.Error)
	}
	return fmt.Errorf("API Error: %d - %s", resp.StatusCode(), resp.Status())
}
