package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse matches the backend's error envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Detail: "internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, detail string) {
	Logger := GetLogger()
	Logger.Warn("Request failed", zap.Int("status", status), zap.String("detail", detail))
	c.JSON(status, ErrorResponse{Detail: detail})
}
