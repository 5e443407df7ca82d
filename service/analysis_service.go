package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/client"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/customerrors"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/rs/zerolog/log"
)

type AnalysisService interface {
	Analyze(ctx context.Context, req model.AnalyzeRequest) (string, error)
}

type AnalysisServiceImpl struct {
	client *client.GeminiClient
	apiKey string
}

func NewAnalysisService(c *client.GeminiClient, apiKey string) AnalysisService {
	return &AnalysisServiceImpl{
		client: c,
		apiKey: apiKey,
	}
}

// Analyze builds the commentary prompt from the market figures and asks
// Gemini for a short sentiment read.
func (s *AnalysisServiceImpl) Analyze(ctx context.Context, req model.AnalyzeRequest) (string, error) {
	if s.apiKey == "" {
		return "", &customerrors.ConfigurationError{Provider: customerrors.Gemini}
	}

	prompt := BuildPrompt(req)

	resp, err := s.client.GenerateContent(ctx, s.apiKey, model.NewGeminiRequest(prompt))
	if err != nil {
		log.Error().Err(err).Str("symbol", req.Symbol).Msg("gemini request failed")
		return "", customerrors.WrapTransport(customerrors.Gemini, err)
	}
	if !resp.IsSuccess() {
		return "", customerrors.NewUpstreamError(customerrors.Gemini, resp.StatusCode(), resp.Body())
	}

	var payload model.GeminiResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("failed to parse gemini json: %w", err)
	}
	return payload.FirstCandidateText(), nil
}

// BuildPrompt renders the natural-language prompt. News titles, when
// present, are enumerated after the figures.
func BuildPrompt(req model.AnalyzeRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the following cryptocurrency data for %s:\n", req.Symbol)
	fmt.Fprintf(&b, "- Current Price: $%s\n", formatNumber(req.CurrentPrice))
	fmt.Fprintf(&b, "- 24h Change: %s%%\n", formatNumber(req.PercentChange24h))
	fmt.Fprintf(&b, "- Market Cap: $%s\n", formatNumber(req.MarketCap))
	fmt.Fprintf(&b, "- RSI (14): %s\n", req.RSI)
	fmt.Fprintf(&b, "- MACD: %s\n", req.MACD)
	fmt.Fprintf(&b, "- 50-Day MA: %s\n", req.SMA50)
	fmt.Fprintf(&b, "- 200-Day MA: %s\n", req.SMA200)
	fmt.Fprintf(&b, "- 24h Volume: %s", req.Volume)

	if len(req.News) > 0 {
		b.WriteString("\n\nLatest News:\n")
		for i, item := range req.News {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%d. %s", i+1, item.Title)
		}
	}

	fmt.Fprintf(&b, "\n\nProvide a concise market sentiment analysis and potential short-term outlook for %s in 2-3 sentences.", req.Symbol)
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
