package errors

import "net/http"

var ErrNotAllowed = &Exception{
	Message:    "action is not allowed for your role",
	StatusCode: http.StatusForbidden,
}
