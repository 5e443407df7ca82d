package config

import (
	"reflect"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfigs_Defaults(t *testing.T) {
	clearEnv(t)

	cfgs, err := LoadConfigs()
	if err != nil {
		t.Fatal(err)
	}
	if cfgs.Config.Port != "8080" {
		t.Errorf("port: got %s", cfgs.Config.Port)
	}
	if !reflect.DeepEqual(cfgs.Config.FrontendUrls, []string{"http://localhost:3000"}) {
		t.Errorf("frontend urls: got %v", cfgs.Config.FrontendUrls)
	}
	if cfgs.Config.CoinMarketCapApiKey != "" {
		t.Error("provider keys default to empty")
	}
}

func TestLoadConfigs_FrontendUrlsSplitOnComma(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRONTEND_URLS", "http://localhost:3000, https://dash.example.com")

	cfgs, err := LoadConfigs()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"http://localhost:3000", "https://dash.example.com"}
	if !reflect.DeepEqual(cfgs.Config.FrontendUrls, want) {
		t.Errorf("frontend urls: got %v, want %v", cfgs.Config.FrontendUrls, want)
	}
}

func TestLoadConfigs_ReadsProviderKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("COINMARKETCAP_API_KEY", "cmc-key")
	t.Setenv("TAVILY_API_KEY", "tav-key")

	cfgs, err := LoadConfigs()
	if err != nil {
		t.Fatal(err)
	}
	if cfgs.Config.Port != "9090" {
		t.Errorf("port: got %s", cfgs.Config.Port)
	}
	if cfgs.Config.CoinMarketCapApiKey != "cmc-key" {
		t.Errorf("cmc key: got %s", cfgs.Config.CoinMarketCapApiKey)
	}
	if cfgs.Config.TavilyApiKey != "tav-key" {
		t.Errorf("tavily key: got %s", cfgs.Config.TavilyApiKey)
	}
}
