package respond

import (
	"github.com/gin-gonic/gin"

	"jobfit-backend/internal/shared/telemetry"
)

// ErrorResponse is the flat error body clients consume. Debug carries the
// underlying error message in non-production environments only.
type ErrorResponse struct {
	Error string      `json:"error"`
	Code  string      `json:"code,omitempty"`
	Debug interface{} `json:"debug,omitempty"`
}

// Error logs and sends a standardized error response.
func Error(c *gin.Context, status int, code, message string, debug interface{}) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: message,
		Code:  code,
		Debug: debug,
	})
}
