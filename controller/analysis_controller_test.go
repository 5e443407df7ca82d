package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/client"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/service"

	"github.com/gin-gonic/gin"
)

func newAnalysisRouter(t *testing.T, upstream http.HandlerFunc, apiKey string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	geminiClient := client.NewGeminiClient()
	geminiClient.RestyClient.SetBaseURL(srv.URL)

	r := gin.New()
	api := r.Group("/api")
	NewAnalysisController(service.NewAnalysisService(geminiClient, apiKey)).RegisterRoutes(api)
	return r
}

func postAnalyze(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/analyze-crypto", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeCrypto_Success(t *testing.T) {
	r := newAnalysisRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Neutral outlook."}]}}]}`))
	}, "g-key")

	// Indicator fields may be numbers or "N/A" strings.
	w := postAnalyze(r, `{
		"symbol":"BTC","currentPrice":67000,"percentChange24h":-1.2,"marketCap":1.3e12,
		"rsi":56.12,"macd":"N/A","sma50":65000.1,"sma200":"N/A","volume":2.8e10,"news":[]
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}

	var payload model.AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Analysis != "Neutral outlook." {
		t.Errorf("got %q", payload.Analysis)
	}
}

func TestAnalyzeCrypto_MissingSymbol(t *testing.T) {
	r := newAnalysisRouter(t, func(w http.ResponseWriter, req *http.Request) {
		t.Error("upstream must not be called")
	}, "g-key")

	w := postAnalyze(r, `{"currentPrice":67000}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", w.Code)
	}
	if got := decodeError(t, w).Error; got == "" {
		t.Error("expected a validation message")
	}
}

func TestAnalyzeCrypto_MissingKey(t *testing.T) {
	r := newAnalysisRouter(t, func(w http.ResponseWriter, req *http.Request) {
		t.Error("upstream must not be called")
	}, "")

	w := postAnalyze(r, `{"symbol":"BTC"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d", w.Code)
	}
	if got := decodeError(t, w).Error; got != "Google AI API key not configured." {
		t.Errorf("got %q", got)
	}
}
