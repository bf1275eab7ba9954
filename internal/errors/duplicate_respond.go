package errors

import "net/http"

var ErrDuplicateRespond = &Exception{
	Message:    "you have already responded to this task",
	StatusCode: http.StatusConflict,
}
