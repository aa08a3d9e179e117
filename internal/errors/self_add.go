package errors

import "net/http"

var ErrSelfAdd = &Exception{
	Message:    "cannot add yourself to your team",
	StatusCode: http.StatusBadRequest,
}
