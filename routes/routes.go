package routes

import (
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/client"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/config"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/controller"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/middleware"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/service"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.SystemConfigs) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORS(cfg.Config))

	// --- 1. Clients ---
	cmcClient := client.NewCoinMarketCapClient()
	coinApiClient := client.NewCoinApiClient()
	coinalyzeClient := client.NewCoinalyzeClient()
	twelveDataClient := client.NewTwelveDataClient()
	geminiClient := client.NewGeminiClient()
	tavilyClient := client.NewTavilyClient()

	// --- 2. Services (Dependency Injection) ---
	listingsSvc := service.NewListingsService(cmcClient, cfg.Config.CoinMarketCapApiKey)
	ohlcvSvc := service.NewOhlcvService(
		coinApiClient,
		coinalyzeClient,
		twelveDataClient,
		cfg.Config.CoinApiKey,
		cfg.Config.CoinalyzeApiKey,
		cfg.Config.TwelveDataApiKey,
	)
	analysisSvc := service.NewAnalysisService(geminiClient, cfg.Config.GoogleAiApiKey)
	newsSvc := service.NewNewsService(tavilyClient, cfg.Config.TavilyApiKey)

	// --- 3. Routes & Controllers ---
	api := r.Group("/api")
	{
		// Health Check
		controller.NewHealthController().RegisterRoutes(api)

		// Market Data Relays
		controller.NewMarketController(listingsSvc, ohlcvSvc).RegisterRoutes(api)

		// AI Commentary
		controller.NewAnalysisController(analysisSvc).RegisterRoutes(api)

		// News Search
		controller.NewNewsController(newsSvc).RegisterRoutes(api)
	}

	return r
}
