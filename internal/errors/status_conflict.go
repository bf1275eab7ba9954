package errors

import "net/http"

var ErrStatusConflict = &Exception{
	Message:    "task status changed concurrently",
	StatusCode: http.StatusConflict,
}
