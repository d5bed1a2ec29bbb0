package admin

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCannotBanAdmin   = errors.New("cannot ban an admin account")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryInUse    = errors.New("category is referenced by slots or bookings")
)
