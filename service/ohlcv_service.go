package service

import (
	"context"
	"encoding/json"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/client"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/customerrors"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// OhlcvService relays price history from three alternate providers. The
// upstream JSON passes through unchanged; the dashboard decodes it.
type OhlcvService interface {
	FetchCoinApiHistory(ctx context.Context, symbol, timeStart, timeEnd string) (json.RawMessage, error)
	FetchCoinalyzeHistory(ctx context.Context, symbol, interval, from, to string) (json.RawMessage, error)
	FetchTwelveDataHistory(ctx context.Context, symbol, interval, outputSize string) (json.RawMessage, error)
}

type OhlcvServiceImpl struct {
	coinApi    *client.CoinApiClient
	coinalyze  *client.CoinalyzeClient
	twelveData *client.TwelveDataClient

	coinApiKey    string
	coinalyzeKey  string
	twelveDataKey string
}

func NewOhlcvService(coinApi *client.CoinApiClient, coinalyze *client.CoinalyzeClient, twelveData *client.TwelveDataClient, coinApiKey, coinalyzeKey, twelveDataKey string) OhlcvService {
	return &OhlcvServiceImpl{
		coinApi:       coinApi,
		coinalyze:     coinalyze,
		twelveData:    twelveData,
		coinApiKey:    coinApiKey,
		coinalyzeKey:  coinalyzeKey,
		twelveDataKey: twelveDataKey,
	}
}

func (s *OhlcvServiceImpl) FetchCoinApiHistory(ctx context.Context, symbol, timeStart, timeEnd string) (json.RawMessage, error) {
	if s.coinApiKey == "" {
		return nil, &customerrors.ConfigurationError{Provider: customerrors.CoinAPI}
	}
	resp, err := s.coinApi.DailyHistory(ctx, s.coinApiKey, symbol, timeStart, timeEnd)
	return relayBody(customerrors.CoinAPI, resp, err)
}

func (s *OhlcvServiceImpl) FetchCoinalyzeHistory(ctx context.Context, symbol, interval, from, to string) (json.RawMessage, error) {
	if s.coinalyzeKey == "" {
		return nil, &customerrors.ConfigurationError{Provider: customerrors.Coinalyze}
	}
	resp, err := s.coinalyze.History(ctx, s.coinalyzeKey, symbol, interval, from, to)
	return relayBody(customerrors.Coinalyze, resp, err)
}

func (s *OhlcvServiceImpl) FetchTwelveDataHistory(ctx context.Context, symbol, interval, outputSize string) (json.RawMessage, error) {
	if s.twelveDataKey == "" {
		return nil, &customerrors.ConfigurationError{Provider: customerrors.TwelveData}
	}
	resp, err := s.twelveData.TimeSeries(ctx, s.twelveDataKey, symbol, interval, outputSize)
	return relayBody(customerrors.TwelveData, resp, err)
}

// relayBody maps one upstream round trip to either its raw body or a typed
// error. No retries; each operation is one round trip.
func relayBody(provider customerrors.Provider, resp *resty.Response, err error) (json.RawMessage, error) {
	if err != nil {
		log.Error().Err(err).Str("provider", provider.Name).Msg("ohlcv request failed")
		return nil, customerrors.WrapTransport(provider, err)
	}
	if !resp.IsSuccess() {
		return nil, customerrors.NewUpstreamError(provider, resp.StatusCode(), resp.Body())
	}
	return json.RawMessage(resp.Body()), nil
}
