package booking

import (
	entbooking "github.com/mentora/mentora_backend/internal/repo/booking"
)

// transitions is the booking lifecycle: confirmed is the only live state,
// completed and cancelled are terminal.
var transitions = map[entbooking.Status][]entbooking.Status{
	entbooking.StatusConfirmed: {entbooking.StatusCompleted, entbooking.StatusCancelled},
	entbooking.StatusCompleted: {},
	entbooking.StatusCancelled: {},
}

// canTransition reports whether a booking may move from one status to another.
func canTransition(from, to entbooking.Status) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// transitionError maps an illegal transition to the sentinel describing
// the current (terminal) state.
func transitionError(from entbooking.Status) error {
	switch from {
	case entbooking.StatusCompleted:
		return ErrAlreadyCompleted
	case entbooking.StatusCancelled:
		return ErrAlreadyCancelled
	default:
		return ErrInvalidTransition
	}
}
