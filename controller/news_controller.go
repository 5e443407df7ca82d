package controller

import (
	"net/http"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/customerrors"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/service"

	"github.com/gin-gonic/gin"
)

type NewsController struct {
	newsService service.NewsService
}

func NewNewsController(ns service.NewsService) *NewsController {
	return &NewsController{
		newsService: ns,
	}
}

// RegisterRoutes sets up the news search endpoint.
func (ctrl *NewsController) RegisterRoutes(router *gin.RouterGroup) {
	newsGroup := router.Group("/news")
	{
		newsGroup.GET("/tavily", ctrl.GetNews)
	}
}

// GetNews searches recent news for one symbol.
// @Summary      Crypto News Search
// @Description  Runs a fixed "<symbol> crypto news" Tavily search capped at 10 results.
// @Tags         News
// @Produce      json
// @Param        symbol  query     string  true  "Asset symbol (e.g. BTC)"
// @Success      200     {object}  model.NewsResponse
// @Failure      400     {object}  model.ErrorResponse
// @Failure      500     {object}  model.ErrorResponse
// @Router       /news/tavily [get]
func (ctrl *NewsController) GetNews(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		writeError(c, &customerrors.ValidationError{Message: "Symbol parameter is required."})
		return
	}

	news, err := ctrl.newsService.SearchNews(c.Request.Context(), symbol)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewsResponse{News: news})
}
