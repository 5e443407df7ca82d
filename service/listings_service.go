package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/client"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/customerrors"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/rs/zerolog/log"
)

// listingsLimit caps every listings relay regardless of the caller's query.
const listingsLimit = "100"

type ListingsService interface {
	FetchListings(ctx context.Context, query url.Values) ([]model.Coin, error)
}

type ListingsServiceImpl struct {
	client *client.CoinMarketCapClient
	apiKey string
}

func NewListingsService(c *client.CoinMarketCapClient, apiKey string) ListingsService {
	return &ListingsServiceImpl{
		client: c,
		apiKey: apiKey,
	}
}

// FetchListings relays the caller's query to CoinMarketCap and reshapes the
// result into the dashboard's coin fields.
func (s *ListingsServiceImpl) FetchListings(ctx context.Context, query url.Values) ([]model.Coin, error) {
	if s.apiKey == "" {
		return nil, &customerrors.ConfigurationError{Provider: customerrors.CoinMarketCap}
	}

	forwarded := make(url.Values, len(query)+1)
	for key, values := range query {
		forwarded[key] = values
	}
	forwarded.Set("limit", listingsLimit)

	resp, err := s.client.Listings(ctx, s.apiKey, forwarded)
	if err != nil {
		log.Error().Err(err).Msg("coinmarketcap listings request failed")
		return nil, customerrors.WrapTransport(customerrors.CoinMarketCap, err)
	}
	if !resp.IsSuccess() {
		return nil, customerrors.NewUpstreamError(customerrors.CoinMarketCap, resp.StatusCode(), resp.Body())
	}

	var payload model.CMCListingsResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse coinmarketcap json: %w", err)
	}

	coins := make([]model.Coin, 0, len(payload.Data))
	for _, listing := range payload.Data {
		coins = append(coins, listing.ToCoin())
	}
	return coins, nil
}
