package response

import (
	"github.com/gin-gonic/gin"
)

// SuccessBody is the wire shape of every 2xx inquiry response.
type SuccessBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorBody is the wire shape of every non-2xx inquiry response. Details
// carries the underlying failure's message for diagnostics and is omitted
// when empty.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, SuccessBody{
		Success: true,
		Message: message,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, errMsg, details string) {
	c.JSON(code, ErrorBody{
		Error:   errMsg,
		Details: details,
	})
}
