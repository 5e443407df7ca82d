package client

import (
	"context"
	"time"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/go-resty/resty/v2"
)

const geminiModel = "gemini-2.5-flash"

type GeminiClient struct {
	RestyClient *resty.Client
}

func NewGeminiClient() *GeminiClient {
	c := resty.New().
		SetBaseURL("https://generativelanguage.googleapis.com/v1beta").
		SetTimeout(30*time.Second).
		SetHeader("Content-Type", "application/json")

	return &GeminiClient{RestyClient: c}
}

// GenerateContent runs one single-turn generation request.
func (c *GeminiClient) GenerateContent(ctx context.Context, apiKey string, req model.GeminiRequest) (*resty.Response, error) {
	return c.RestyClient.R().
		SetContext(ctx).
		SetQueryParam("key", apiKey).
		SetBody(req).
		Post("/models/" + geminiModel + ":generateContent")
}
