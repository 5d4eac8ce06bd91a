package service

import "errors"

var (
	ErrRoomAlreadyExists = errors.New("room with this number already exists")
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomFull          = errors.New("room is already full")

	ErrTenantNotFound = errors.New("tenant not found")

	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	ErrComplaintNotFound      = errors.New("complaint not found")
	ErrInvalidComplaintStatus = errors.New("invalid complaint status")

	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)
