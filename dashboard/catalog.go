package dashboard

import (
	"context"
	"sort"
	"sync"

	localcache "github.com/muratbgul/AI-Powered-Crypto-Signal-Project/cache"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/rs/zerolog/log"
)

// Catalog holds the ranked asset list fetched once at startup. No
// background refresh, no pagination beyond the gateway's 100-entry cap.
type Catalog struct {
	gateway *GatewayClient

	mu    sync.RWMutex
	coins []model.Coin
	err   error
}

func NewCatalog(gateway *GatewayClient) *Catalog {
	return &Catalog{gateway: gateway}
}

// Load fetches the listings and sorts them ascending by rank. On failure
// the error is stored and the catalog stays empty.
func (ct *Catalog) Load(ctx context.Context) error {
	coins, err := ct.gateway.Listings(ctx)

	ct.mu.Lock()
	defer ct.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Msg("catalog load failed")
		ct.coins = nil
		ct.err = err
		return err
	}

	SortByRank(coins)
	ct.coins = coins
	ct.err = nil

	localcache.CatalogCache.Flush()
	for _, coin := range coins {
		localcache.CatalogCache.SetDefault(coin.Symbol, coin)
	}
	return nil
}

// SortByRank orders coins ascending by rank; unranked coins sort after all
// ranked ones and ties keep their insertion order.
func SortByRank(coins []model.Coin) {
	sort.SliceStable(coins, func(i, j int) bool {
		return coins[i].Rank() < coins[j].Rank()
	})
}

// Assets returns a copy of the ranked list.
func (ct *Catalog) Assets() []model.Coin {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	coins := make([]model.Coin, len(ct.coins))
	copy(coins, ct.coins)
	return coins
}

// First returns the top-ranked asset, if any.
func (ct *Catalog) First() (model.Coin, bool) {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	if len(ct.coins) == 0 {
		return model.Coin{}, false
	}
	return ct.coins[0], true
}

// Get looks one asset up by symbol.
func (ct *Catalog) Get(symbol string) (model.Coin, bool) {
	if v, ok := localcache.CatalogCache.Get(symbol); ok {
		if coin, ok := v.(model.Coin); ok {
			return coin, true
		}
	}
	return model.Coin{}, false
}

// Err returns the stored load error, if the last Load failed.
func (ct *Catalog) Err() error {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return ct.err
}
