package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"
)

func TestSortByRank(t *testing.T) {
	// One unranked coin plus ranks 2 and 1: ranked ascending, unranked last.
	coins := []model.Coin{
		{Symbol: "UNR", CmcRank: model.UnrankedSentinel},
		{Symbol: "ETH", CmcRank: 2},
		{Symbol: "BTC", CmcRank: 1},
	}
	SortByRank(coins)

	want := []string{"BTC", "ETH", "UNR"}
	for i, symbol := range want {
		if coins[i].Symbol != symbol {
			t.Errorf("position %d: got %s, want %s", i, coins[i].Symbol, symbol)
		}
	}
}

func TestSortByRank_StableTies(t *testing.T) {
	coins := []model.Coin{
		{Symbol: "A", CmcRank: 5},
		{Symbol: "B", CmcRank: 5},
		{Symbol: "C", CmcRank: 0}, // defensively treated as unranked
		{Symbol: "D", CmcRank: 5},
	}
	SortByRank(coins)

	want := []string{"A", "B", "D", "C"}
	for i, symbol := range want {
		if coins[i].Symbol != symbol {
			t.Errorf("position %d: got %s, want %s", i, coins[i].Symbol, symbol)
		}
	}
}

func TestCatalog_LoadFailureStaysEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"CoinMarketCap API key not configured."}`))
	}))
	defer srv.Close()

	catalog := NewCatalog(NewGatewayClient(srv.URL))
	if err := catalog.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if len(catalog.Assets()) != 0 {
		t.Error("catalog must stay empty after a failed load")
	}
	if catalog.Err() == nil {
		t.Error("load error must be stored")
	}
	if _, ok := catalog.First(); ok {
		t.Error("First must report no asset")
	}
}

func TestCatalog_LoadAndLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":2,"symbol":"ETH","name":"Ethereum","cmcRank":2,"currentPrice":3500},
			{"id":1,"symbol":"BTC","name":"Bitcoin","cmcRank":1,"currentPrice":67000}
		]`))
	}))
	defer srv.Close()

	catalog := NewCatalog(NewGatewayClient(srv.URL))
	if err := catalog.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	first, ok := catalog.First()
	if !ok || first.Symbol != "BTC" {
		t.Errorf("top-ranked asset: got %+v", first)
	}
	eth, ok := catalog.Get("ETH")
	if !ok || eth.CurrentPrice != 3500 {
		t.Errorf("lookup: got %+v, ok=%v", eth, ok)
	}
	if _, ok := catalog.Get("NOPE"); ok {
		t.Error("unknown symbol must not resolve")
	}
}
