package errors

import "net/http"

var ErrSaveFailed = &Exception{
	Message:    "an error occurred while saving",
	StatusCode: http.StatusInternalServerError,
}
