package errors

import "net/http"

var ErrTeamNotFound = &Exception{
	Message:    "team not found",
	StatusCode: http.StatusNotFound,
}
