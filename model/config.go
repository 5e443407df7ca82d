package model

// --- SYSTEM CONFIG ---

// EnvConfig holds sensitive environment settings. Keys are optional:
// a missing key disables only the endpoints that need it.
type EnvConfig struct {
	Port                string   `mapstructure:"PORT"`
	Environment         string   `mapstructure:"ENVIRONMENT"`
	FrontendUrls        []string `mapstructure:"FRONTEND_URLS"`
	CoinMarketCapApiKey string   `mapstructure:"COINMARKETCAP_API_KEY"`
	CoinApiKey          string   `mapstructure:"COINAPI_IO_API_KEY"`
	CoinalyzeApiKey     string   `mapstructure:"COINALYZE_API_KEY"`
	TwelveDataApiKey    string   `mapstructure:"TWELVEDATA_API_KEY"`
	GoogleAiApiKey      string   `mapstructure:"GOOGLE_AI_API_KEY"`
	TavilyApiKey        string   `mapstructure:"TAVILY_API_KEY"`
}
