package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/client"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/service"

	"github.com/gin-gonic/gin"
)

func newNewsRouter(t *testing.T, upstream http.HandlerFunc, apiKey string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	tavilyClient := client.NewTavilyClient()
	tavilyClient.RestyClient.SetBaseURL(srv.URL)

	r := gin.New()
	api := r.Group("/api")
	NewNewsController(service.NewNewsService(tavilyClient, apiKey)).RegisterRoutes(api)
	return r
}

func TestGetNews_MissingSymbol(t *testing.T) {
	r := newNewsRouter(t, func(w http.ResponseWriter, req *http.Request) {
		t.Error("upstream must not be called")
	}, "t-key")

	w := doRequest(r, http.MethodGet, "/api/news/tavily")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", w.Code)
	}
	if got := decodeError(t, w).Error; got != "Symbol parameter is required." {
		t.Errorf("got %q", got)
	}
}

func TestGetNews_Success(t *testing.T) {
	r := newNewsRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"results":[{"title":"BTC news","url":"https://example.com"}]}`))
	}, "t-key")

	w := doRequest(r, http.MethodGet, "/api/news/tavily?symbol=BTC")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}

	var payload model.NewsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.News) != 1 || payload.News[0].Title != "BTC news" {
		t.Errorf("payload: %+v", payload)
	}
}
