package controller

import (
	"errors"
	"net/http"

	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/customerrors"
	"github.com/muratbgul/AI-Powered-Crypto-Signal-Project/model"

	"github.com/gin-gonic/gin"
)

// writeError maps the error taxonomy onto the gateway's wire contract:
// upstream failures mirror the upstream status, validation is 400, missing
// configuration 500, timeouts 504, network failures 502. Anything untyped
// stays a generic 500 so internals never leak to the dashboard.
func writeError(c *gin.Context, err error) {
	var (
		cfgErr       *customerrors.ConfigurationError
		valErr       *customerrors.ValidationError
		upstreamErr  *customerrors.UpstreamError
		timeoutErr   *customerrors.TimeoutError
		transportErr *customerrors.TransportError
	)

	switch {
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: cfgErr.Error()})
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: valErr.Error()})
	case errors.As(err, &upstreamErr):
		c.JSON(upstreamErr.Status, model.ErrorResponse{Error: upstreamErr.Error()})
	case errors.As(err, &timeoutErr):
		c.JSON(http.StatusGatewayTimeout, model.ErrorResponse{Error: timeoutErr.Error()})
	case errors.As(err, &transportErr):
		c.JSON(http.StatusBadGateway, model.ErrorResponse{Error: transportErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Internal server error."})
	}
}
