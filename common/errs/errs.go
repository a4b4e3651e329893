package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrNotFound = errors.New("not found")

// HttpError is written to the client as is, Data included.
type HttpError struct {
	Code    int
	Message string
	Data    any
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("code %d: %s, data: %v", e.Code, e.Message, e.Data)
}

func BadRequest(message string, data any) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message, Data: data}
}

func NotFound(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message}
}

func Unauthorized(message string) *HttpError {
	return &HttpError{Code: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *HttpError {
	return &HttpError{Code: http.StatusForbidden, Message: message}
}
