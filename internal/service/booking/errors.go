package booking

import "errors"

var (
	ErrNotFound          = errors.New("booking not found")
	ErrSlotNotFound      = errors.New("availability slot not found")
	ErrSlotNotAvailable  = errors.New("availability slot is already booked")
	ErrNotOwner          = errors.New("booking does not belong to this user")
	ErrAlreadyCompleted  = errors.New("booking is already completed")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrTutorNotFound     = errors.New("tutor profile not found")
	ErrOwnSlot           = errors.New("cannot book your own slot")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)
