package errors

import "net/http"

var ErrDuplicateMember = &Exception{
	Message:    "user already in your team",
	StatusCode: http.StatusBadRequest,
}
