package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/moodpulse/internal/domain/dto"
	"github.com/guttosm/moodpulse/internal/logger"
)

// RecoveryMiddleware turns a panic in any later handler into a 500 carrying a
// dto.ErrorResponse. The panic value and stack are logged with the request id
// so the failing call can be matched to its access log line.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			cause := fmt.Errorf("%v", r)
			rid, _ := c.Get(RequestIDKey)
			logger.L().Error().
				Str("request_id", toString(rid)).
				Str("path", c.Request.URL.Path).
				Err(cause).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", cause))
		}()

		c.Next()
	}
}
