package service

import "errors"

var (
	ErrEmailTaken           = errors.New("user with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrNotOwner             = errors.New("permission denied")
	ErrDeadlinePassed       = errors.New("assignment deadline has passed")
	ErrAttemptLimitExceeded = errors.New("retry limit exceeded")
)
