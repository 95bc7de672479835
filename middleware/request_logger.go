package middleware

import (
	"time"

	"mentorlink/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger tags every request with a correlation id, stores a scoped logger on the
// context for handlers, and logs the outcome once the chain returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(utils.CorrelationHeader)
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		logger := utils.GetLogger().With(zap.String("correlationID", correlationID))
		c.Set(utils.CtxCorrelationID, correlationID)
		c.Set(utils.CtxLogger, logger)
		c.Header(utils.CorrelationHeader, correlationID)

		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", getClientIP(c)),
		)
	}
}
