package services

import "errors"

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
	ErrReasonRequired = errors.New("rejection reason is required")
	ErrSelfRoleChange = errors.New("cannot change your own role")
)
