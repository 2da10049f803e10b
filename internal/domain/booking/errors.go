package booking

import (
	"errors"
	"fmt"
)

// Base error categories. Handlers map these onto HTTP statuses with
// errors.Is, so every specific error below wraps exactly one of them.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
)

var (
	ErrBookingNotFound      = fmt.Errorf("booking %w", ErrNotFound)
	ErrPractitionerNotFound = fmt.Errorf("practitioner %w", ErrNotFound)

	ErrInvalidDate    = fmt.Errorf("date must be YYYY-MM-DD: %w", ErrInvalidRequest)
	ErrPastDate       = fmt.Errorf("cannot book in the past: %w", ErrInvalidRequest)
	ErrPastSlot       = fmt.Errorf("cannot book a past time today: %w", ErrInvalidRequest)
	ErrSlotNotOffered = fmt.Errorf("slot not offered by this practitioner: %w", ErrInvalidRequest)

	ErrSlotTaken = fmt.Errorf("slot is already taken: %w", ErrConflict)

	ErrAlreadyCancelled = fmt.Errorf("booking is already cancelled: %w", ErrInvalidRequest)
	ErrCancelCompleted  = fmt.Errorf("cannot cancel a completed booking: %w", ErrInvalidRequest)

	ErrNotBookingOwner        = fmt.Errorf("caller does not own this booking: %w", ErrForbidden)
	ErrNotBookingPractitioner = fmt.Errorf("only the booked practitioner may confirm: %w", ErrForbidden)
)

// ErrDayNotServed reports a booking attempt on a weekday the practitioner
// does not work.
func ErrDayNotServed(weekday string) error {
	return fmt.Errorf("practitioner does not attend on %s: %w", weekday, ErrInvalidRequest)
}

// ErrConfirmState reports a confirm attempt against a booking that is not
// pending.
func ErrConfirmState(state State) error {
	return fmt.Errorf("cannot confirm a booking in state %s: %w", state, ErrInvalidRequest)
}
