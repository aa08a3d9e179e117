package errors

import "net/http"

// NewValidation builds a 400 for malformed or missing input.
func NewValidation(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}
