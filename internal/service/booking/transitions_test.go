package booking

import (
	"errors"
	"testing"

	entbooking "github.com/mentora/mentora_backend/internal/repo/booking"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entbooking.Status
		to   entbooking.Status
		want bool
	}{
		{"confirmed to completed", entbooking.StatusConfirmed, entbooking.StatusCompleted, true},
		{"confirmed to cancelled", entbooking.StatusConfirmed, entbooking.StatusCancelled, true},
		{"completed is terminal", entbooking.StatusCompleted, entbooking.StatusCancelled, false},
		{"completed cannot revert", entbooking.StatusCompleted, entbooking.StatusConfirmed, false},
		{"cancelled is terminal", entbooking.StatusCancelled, entbooking.StatusCompleted, false},
		{"cancelled cannot revert", entbooking.StatusCancelled, entbooking.StatusConfirmed, false},
		{"no self transition", entbooking.StatusConfirmed, entbooking.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("canTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTransitionError(t *testing.T) {
	if err := transitionError(entbooking.StatusCompleted); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("transitionError(completed) = %v, want ErrAlreadyCompleted", err)
	}
	if err := transitionError(entbooking.StatusCancelled); !errors.Is(err, ErrAlreadyCancelled) {
		t.Errorf("transitionError(cancelled) = %v, want ErrAlreadyCancelled", err)
	}
	if err := transitionError(entbooking.StatusConfirmed); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("transitionError(confirmed) = %v, want ErrInvalidTransition", err)
	}
}
