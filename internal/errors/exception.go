package errors

import (
	"errors"
	"net/http"
)

// Exception is a typed application error carrying the HTTP status it
// should surface as. Errors here are deterministic for a given store
// state, so callers never retry them.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode maps an error to its HTTP status, defaulting to 500 for
// anything that is not an Exception.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
