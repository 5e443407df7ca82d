package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// envKeys lists every variable the gateway reads. Provider keys are
// optional; a missing one disables only that provider's endpoints.
var envKeys = []string{
	"PORT",
	"ENVIRONMENT",
	"FRONTEND_URLS",
	"COINMARKETCAP_API_KEY",
	"COINAPI_IO_API_KEY",
	"COINALYZE_API_KEY",
	"TWELVEDATA_API_KEY",
	"GOOGLE_AI_API_KEY",
	"TAVILY_API_KEY",
}

// LoadConfigs reads .env (if present) plus the process environment into
// an EnvConfig. Secrets are never logged.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	raw := make(map[string]string, len(envKeys))
	for _, key := range envKeys {
		if v := os.Getenv(key); v != "" {
			raw[key] = v
		}
	}

	var envCfg model.EnvConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &envCfg,
		DecodeHook: mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}

	for i, u := range envCfg.FrontendUrls {
		envCfg.FrontendUrls[i] = strings.TrimSpace(u)
	}
	if len(envCfg.FrontendUrls) == 0 {
		envCfg.FrontendUrls = []string{"http://localhost:3000"}
	}
	if envCfg.Port == "" {
		envCfg.Port = "8080"
	}

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}
