package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrLoginDisabled      = errors.New("operator login is not configured")
)
