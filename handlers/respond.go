package handlers

import (
	"errors"
	"net/http"

	"github.com/dawar-shafaque/restaurant-application/api"
	"github.com/dawar-shafaque/restaurant-application/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates a workflow error at the boundary closest to the
// user action: server rejections keep their status and message, transport
// failures become a generic gateway error, anything else is a validation
// error that never reached the network.
func respondError(c *gin.Context, err error) {
	logger := utils.GetLogger()

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		logger.Warn("Upstream rejected request",
			zap.Int("status", statusErr.Status),
			zap.String("message", statusErr.Message))
		c.JSON(statusErr.Status, gin.H{"message": statusErr.Message})
		return
	}

	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		logger.Error("Upstream unreachable", zap.Error(transportErr.Unwrap()))
		c.JSON(http.StatusBadGateway, gin.H{"message": transportErr.Error()})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}
