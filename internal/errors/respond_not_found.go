package errors

import "net/http"

var ErrRespondNotFound = &Exception{
	Message:    "respond not found",
	StatusCode: http.StatusNotFound,
}
