package utils

import (
	"github.com/google/uuid"
)

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

func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
