package tutor

import "errors"

var (
	ErrProfileNotFound  = errors.New("tutor profile not found")
	ErrProfileRequired  = errors.New("create a tutor profile first")
	ErrSlotNotFound     = errors.New("availability slot not found")
	ErrSlotBooked       = errors.New("cannot delete a booked slot")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrOverlappingSlot  = errors.New("slot overlaps an existing slot")
	ErrCategoryNotFound = errors.New("category not found")
)
