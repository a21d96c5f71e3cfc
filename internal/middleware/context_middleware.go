package middleware

import (
	"go-attendance/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger stores a request-scoped logger in the request context so
// services can log with the request id without knowing about gin.
// It must run after RequestID.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reqLogger := logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)))

		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))
		c.Next()
	}
}
