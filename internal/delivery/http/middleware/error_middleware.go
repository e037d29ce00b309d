package middleware

import (
	"errors"
	"net/http"

	"recruiterconnect-backend/internal/delivery/http/response"
	"recruiterconnect-backend/pkg/apperror"
	"recruiterconnect-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into the
// standard envelope. Unclassified errors are logged server-side and
// surfaced as a generic 500 so store internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logger.Log.Error("request failed",
						"path", c.FullPath(), "method", c.Request.Method, "error", err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unhandled error",
					"path", c.FullPath(), "method", c.Request.Method, "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
