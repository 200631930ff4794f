package middleware

import (
	"errors"
	"net/http"

	"techfix-backend/internal/delivery/http/response"
	"techfix-backend/pkg/apperror"
	"techfix-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, appErr.Details())
			} else {
				// SECURITY: Never expose internal error details to clients.
				// Log the actual error server-side for debugging, but send a
				// generic message to the user to prevent information disclosure.
				reqID, _ := c.Get("RequestID")
				logger.Log.Error("unhandled error", "error", err, "request_id", reqID)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", "")
			}
		}
	}
}
