package controller

import (
	"net/http"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/customerrors"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/service"

	"github.com/gin-gonic/gin"
)

type MarketController struct {
	listingsService service.ListingsService
	ohlcvService    service.OhlcvService
}

func NewMarketController(ls service.ListingsService, os service.OhlcvService) *MarketController {
	return &MarketController{
		listingsService: ls,
		ohlcvService:    os,
	}
}

// RegisterRoutes sets up the route group for market data relays.
func (ctrl *MarketController) RegisterRoutes(router *gin.RouterGroup) {
	cryptoGroup := router.Group("/cryptocurrency")
	{
		cryptoGroup.GET("/listings/latest", ctrl.GetListings)
		cryptoGroup.GET("/ohlcv/historical", ctrl.GetCoinApiHistory)
		cryptoGroup.GET("/ohlcv/coinalyze-historical", ctrl.GetCoinalyzeHistory)
		cryptoGroup.GET("/ohlcv/twelvedata-historical", ctrl.GetTwelveDataHistory)
	}
}

// GetListings relays the ranked coin list.
// @Summary      Latest Cryptocurrency Listings
// @Description  Relays CoinMarketCap listings reshaped into dashboard fields. Limit is always capped at 100.
// @Tags         Market
// @Produce      json
// @Success      200  {array}   model.Coin
// @Failure      500  {object}  model.ErrorResponse
// @Router       /cryptocurrency/listings/latest [get]
func (ctrl *MarketController) GetListings(c *gin.Context) {
	coins, err := ctrl.listingsService.FetchListings(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, coins)
}

// GetCoinApiHistory relays daily OHLCV bars from CoinAPI.
// @Summary      CoinAPI OHLCV History
// @Tags         Market
// @Produce      json
// @Param        symbol      query  string  true  "CoinAPI symbol id"
// @Param        time_start  query  string  true  "Range start (ISO 8601)"
// @Param        time_end    query  string  true  "Range end (ISO 8601)"
// @Failure      400  {object}  model.ErrorResponse
// @Router       /cryptocurrency/ohlcv/historical [get]
func (ctrl *MarketController) GetCoinApiHistory(c *gin.Context) {
	symbol := c.Query("symbol")
	timeStart := c.Query("time_start")
	timeEnd := c.Query("time_end")
	if symbol == "" {
		writeError(c, &customerrors.ValidationError{Message: "Symbol parameter is required for OHLCV historical data."})
		return
	}
	if timeStart == "" || timeEnd == "" {
		writeError(c, &customerrors.ValidationError{Message: "time_start and time_end parameters are required."})
		return
	}

	body, err := ctrl.ohlcvService.FetchCoinApiHistory(c.Request.Context(), symbol, timeStart, timeEnd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// GetCoinalyzeHistory relays OHLCV bars from Coinalyze.
// @Summary      Coinalyze OHLCV History
// @Tags         Market
// @Produce      json
// @Param        symbol    query  string  true  "Coinalyze symbol"
// @Param        interval  query  string  true  "Bar interval"
// @Param        from      query  string  true  "Range start (unix)"
// @Param        to        query  string  true  "Range end (unix)"
// @Failure      400  {object}  model.ErrorResponse
// @Router       /cryptocurrency/ohlcv/coinalyze-historical [get]
func (ctrl *MarketController) GetCoinalyzeHistory(c *gin.Context) {
	symbol := c.Query("symbol")
	interval := c.Query("interval")
	from := c.Query("from")
	to := c.Query("to")
	if symbol == "" || interval == "" || from == "" || to == "" {
		writeError(c, &customerrors.ValidationError{Message: "Symbol, interval, from, and to parameters are required."})
		return
	}

	body, err := ctrl.ohlcvService.FetchCoinalyzeHistory(c.Request.Context(), symbol, interval, from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// GetTwelveDataHistory relays OHLCV bars from Twelve Data. The quote
// currency is appended server-side: the dashboard only ever sends the base
// symbol.
// @Summary      Twelve Data OHLCV History
// @Tags         Market
// @Produce      json
// @Param        symbol      query  string  true  "Base symbol (e.g. BTC)"
// @Param        interval    query  string  true  "Bar interval (e.g. 1day)"
// @Param        outputsize  query  string  true  "Number of bars"
// @Failure      400  {object}  model.ErrorResponse
// @Router       /cryptocurrency/ohlcv/twelvedata-historical [get]
func (ctrl *MarketController) GetTwelveDataHistory(c *gin.Context) {
	symbol := c.Query("symbol")
	interval := c.Query("interval")
	outputSize := c.Query("outputsize")
	if symbol == "" || interval == "" || outputSize == "" {
		writeError(c, &customerrors.ValidationError{Message: "Symbol, interval, and outputsize parameters are required."})
		return
	}

	body, err := ctrl.ohlcvService.FetchTwelveDataHistory(c.Request.Context(), symbol, interval, outputSize)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
