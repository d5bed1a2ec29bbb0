package review

import "errors"

var (
	ErrNotFound           = errors.New("review not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotOwner           = errors.New("review does not belong to this user")
	ErrBookingNotOwned    = errors.New("can only review your own booking")
	ErrBookingNotComplete = errors.New("review allowed only after a completed session")
	ErrAlreadyExists      = errors.New("review already exists for this booking")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)
