package utils

import (
	"fmt"
	"net/http"
)

type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error %d: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("error %d: %s", e.Code, e.Message)
}

func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func WrapError(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

const (
	ErrCodeInvalidInput     = 1001
	ErrCodeNotFound         = 1002
	ErrCodeAlreadyExists    = 1003
	ErrCodeInternalError    = 1004
	ErrCodeValidationFailed = 1005
	ErrCodeUnauthorized     = 1006
	ErrCodeForbidden        = 1007
	ErrCodeConflict         = 1008
)

// GetHTTPStatusCode maps an internal error code onto an HTTP status.
func GetHTTPStatusCode(code int) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeAlreadyExists, ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
