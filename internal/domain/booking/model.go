package booking

import (
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of a booking.
type State string

const (
	StatePending   State = "pending"
	StateConfirmed State = "confirmed"
	StateCancelled State = "cancelled"
	StateCompleted State = "completed"
)

func (s State) Valid() bool {
	switch s {
	case StatePending, StateConfirmed, StateCancelled, StateCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transitions leave this state.
func (s State) Terminal() bool {
	return s == StateCancelled || s == StateCompleted
}

// Booking is one patient's hold on one practitioner slot.
type Booking struct {
	ID             uuid.UUID `db:"id" json:"id"`
	PatientID      uuid.UUID `db:"patient_id" json:"patient_id"`
	PractitionerID uuid.UUID `db:"practitioner_id" json:"practitioner_id"`
	Date           string    `db:"date" json:"date"`
	Slot           string    `db:"slot" json:"slot"`
	State          State     `db:"state" json:"state"`
	Reason         string    `db:"reason" json:"reason,omitempty"`

	// Denormalized for listings; populated on read, never written.
	PatientName      string `db:"-" json:"patient_name,omitempty"`
	PractitionerName string `db:"-" json:"practitioner_name,omitempty"`
	SpecialtyName    string `db:"-" json:"specialty_name,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Availability is the answer to "which slots can I book with this
// practitioner on this date".
type Availability struct {
	PractitionerID uuid.UUID `json:"practitioner_id"`
	Date           string    `json:"date"`
	Slots          []string  `json:"slots"`
	Note           string    `json:"note,omitempty"`
}

// DateLayout is the wire and storage format for booking dates.
const DateLayout = "2006-01-02"
