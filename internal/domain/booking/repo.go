package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/antonellamino/clinica-medica-mvp/internal/domain/directory"
)

// Repository persists bookings. Create must surface ErrSlotTaken when the
// (practitioner, date, slot) triple is already held by a non-cancelled
// booking. InTx runs fn atomically; calls the repository receives through
// fn's context share one transaction.
type Repository interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	UpdateState(ctx context.Context, id uuid.UUID, state State) error
	TakenSlots(ctx context.Context, practitionerID uuid.UUID, date string) ([]string, error)
	ListAll(ctx context.Context, limit, offset int) ([]*Booking, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Booking, int, error)
	ListByPractitioner(ctx context.Context, practitionerID uuid.UUID, limit, offset int) ([]*Booking, int, error)
}

// PractitionerDirectory is the slice of the directory the booking flow
// needs: schedule lookup by id and ownership resolution by account.
type PractitionerDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*directory.Practitioner, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*directory.Practitioner, error)
}
