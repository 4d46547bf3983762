package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/moodpulse/internal/domain/dto"
	"github.com/guttosm/moodpulse/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a 500 JSON response
// when the handler chain did not write one itself.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last()
	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Str("request_id", toString(rid)).
		Str("path", c.Request.URL.Path).
		Err(last.Err).
		Msg("request failed")

	if c.Writer.Written() {
		return
	}
	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.JSON(status, dto.NewErrorResponse("Internal server error", last.Err))
}

// AbortWithError records err on the context, stops the chain and writes a
// standardized JSON error body with the given status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
