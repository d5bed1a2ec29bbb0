package user

import "errors"

var (
	ErrNotFound         = errors.New("user not found")
	ErrWrongPassword    = errors.New("current password is incorrect")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)
