package controller

import (
	"net/http"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/customerrors"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/service"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/validator"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	analysisService service.AnalysisService
}

func NewAnalysisController(as service.AnalysisService) *AnalysisController {
	return &AnalysisController{
		analysisService: as,
	}
}

// RegisterRoutes sets up the AI commentary endpoint.
func (ctrl *AnalysisController) RegisterRoutes(router *gin.RouterGroup) {
	aiGroup := router.Group("/ai")
	{
		aiGroup.POST("/analyze-crypto", ctrl.AnalyzeCrypto)
	}
}

// AnalyzeCrypto generates a short market commentary for one asset.
// @Summary      AI Market Commentary
// @Description  Builds a prompt from price, indicator and news fields and relays it to Gemini.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      model.AnalyzeRequest  true  "Market figures"
// @Success      200      {object}  model.AnalyzeResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      500      {object}  model.ErrorResponse
// @Router       /ai/analyze-crypto [post]
func (ctrl *AnalysisController) AnalyzeCrypto(c *gin.Context) {
	var req model.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, &customerrors.ValidationError{Message: "Invalid analyze request body."})
		return
	}
	if err := validator.ValidateAnalyzeRequest(&req); err != nil {
		writeError(c, err)
		return
	}

	analysis, err := ctrl.analysisService.Analyze(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.AnalyzeResponse{Analysis: analysis})
}
