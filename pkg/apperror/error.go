package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Details returns the underlying failure's message for the wire-level
// details field, or "" when there is none.
func (e *AppError) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func MethodNotAllowed() *AppError {
	return New(http.StatusMethodNotAllowed, "Method not allowed", nil)
}

func Internal(message string, err error) *AppError {
	return New(http.StatusInternalServerError, message, err)
}
