package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antonellamino/clinica-medica-mvp/internal/domain/directory"
	"github.com/antonellamino/clinica-medica-mvp/internal/platform/auth"
)

// Caller identifies the authenticated account behind a request.
type Caller struct {
	UserID uuid.UUID
	Role   string
}

type Service struct {
	bookings      Repository
	practitioners PractitionerDirectory
	now           func() time.Time
}

func NewService(bookings Repository, practitioners PractitionerDirectory) *Service {
	return &Service{
		bookings:      bookings,
		practitioners: practitioners,
		now:           time.Now,
	}
}

// SetClock overrides the wall clock. Tests use it to pin "now".
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func clockOf(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func dateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// Availability computes the free slots of a practitioner on a date.
func (s *Service) Availability(ctx context.Context, practitionerID uuid.UUID, date string) (*Availability, error) {
	target, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	pract, err := s.practitioners.GetByID(ctx, practitionerID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrPractitionerNotFound
		}
		return nil, err
	}

	now := s.now()
	if date < dateOf(now) {
		return nil, ErrPastDate
	}

	avail := &Availability{
		PractitionerID: practitionerID,
		Date:           date,
		Slots:          []string{},
	}

	weekday := directory.WeekdayOf(target)
	if !pract.Weekdays.Contains(weekday) {
		avail.Note = fmt.Sprintf("practitioner does not see patients on %s", weekday)
		return avail, nil
	}

	taken, err := s.bookings.TakenSlots(ctx, practitionerID, date)
	if err != nil {
		return nil, err
	}
	takenSet := make(map[string]bool, len(taken))
	for _, slot := range taken {
		takenSet[slot] = true
	}

	today := date == dateOf(now)
	nowClock := clockOf(now)
	for _, slot := range GenerateSlots(pract.StartTime, pract.EndTime) {
		if takenSet[slot] {
			continue
		}
		if today && slot <= nowClock {
			continue
		}
		avail.Slots = append(avail.Slots, slot)
	}
	if len(avail.Slots) == 0 && avail.Note == "" {
		avail.Note = "no free slots on this date"
	}
	return avail, nil
}

// CreateRequest carries everything needed to allocate a slot.
type CreateRequest struct {
	PatientID      uuid.UUID
	PractitionerID uuid.UUID
	Date           string
	Slot           string
	Reason         string
}

// Create validates a booking request against the practitioner's schedule
// and existing bookings, then persists it in state pending. The slot race
// is closed by the repository: a lost race surfaces as ErrSlotTaken.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	target, err := time.ParseInLocation(DateLayout, req.Date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if req.PatientID == uuid.Nil || req.PractitionerID == uuid.Nil || req.Slot == "" {
		return nil, fmt.Errorf("patient, practitioner and slot are required: %w", ErrInvalidRequest)
	}

	pract, err := s.practitioners.GetByID(ctx, req.PractitionerID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrPractitionerNotFound
		}
		return nil, err
	}

	now := s.now()
	if req.Date < dateOf(now) {
		return nil, ErrPastDate
	}

	weekday := directory.WeekdayOf(target)
	if !pract.Weekdays.Contains(weekday) {
		return nil, ErrDayNotServed(string(weekday))
	}

	offered := false
	for _, slot := range GenerateSlots(pract.StartTime, pract.EndTime) {
		if slot == req.Slot {
			offered = true
			break
		}
	}
	if !offered {
		return nil, ErrSlotNotOffered
	}

	b := &Booking{
		PatientID:      req.PatientID,
		PractitionerID: req.PractitionerID,
		Date:           req.Date,
		Slot:           req.Slot,
		State:          StatePending,
		Reason:         req.Reason,
	}

	// Conflict check and insert share one transaction; a race that slips
	// past the check is still stopped by the active-slot unique index and
	// surfaces as ErrSlotTaken.
	err = s.bookings.InTx(ctx, func(ctx context.Context) error {
		taken, err := s.bookings.TakenSlots(ctx, req.PractitionerID, req.Date)
		if err != nil {
			return err
		}
		for _, slot := range taken {
			if slot == req.Slot {
				return ErrSlotTaken
			}
		}
		if req.Date == dateOf(now) && req.Slot <= clockOf(now) {
			return ErrPastSlot
		}
		return s.bookings.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	b.PractitionerName = pract.FullName()
	b.SpecialtyName = pract.SpecialtyName
	return b, nil
}

// Get returns a booking the caller is allowed to see: its patient, its
// practitioner, or an admin.
func (s *Service) Get(ctx context.Context, caller Caller, id uuid.UUID) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, caller, b); err != nil {
		return nil, err
	}
	return b, nil
}

// authorize checks that the caller is the owning patient, the owning
// practitioner, or an admin.
func (s *Service) authorize(ctx context.Context, caller Caller, b *Booking) error {
	switch caller.Role {
	case auth.RoleAdmin:
		return nil
	case auth.RolePatient:
		if b.PatientID == caller.UserID {
			return nil
		}
	case auth.RolePractitioner:
		pract, err := s.practitioners.GetByUserID(ctx, caller.UserID)
		if err == nil && pract.ID == b.PractitionerID {
			return nil
		}
	}
	return ErrNotBookingOwner
}

// Confirm moves a pending booking to confirmed. Only the booked
// practitioner may confirm.
func (s *Service) Confirm(ctx context.Context, caller Caller, id uuid.UUID) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if caller.Role != auth.RolePractitioner {
		return nil, ErrNotBookingPractitioner
	}
	pract, err := s.practitioners.GetByUserID(ctx, caller.UserID)
	if err != nil || pract.ID != b.PractitionerID {
		return nil, ErrNotBookingPractitioner
	}

	if b.State != StatePending {
		return nil, ErrConfirmState(b.State)
	}

	if err := s.bookings.UpdateState(ctx, id, StateConfirmed); err != nil {
		return nil, err
	}
	b.State = StateConfirmed
	return b, nil
}

// Cancel moves a pending or confirmed booking to cancelled. The owning
// patient, the booked practitioner, and admins may cancel. Cancellation is
// time-independent: past bookings can still be cancelled.
func (s *Service) Cancel(ctx context.Context, caller Caller, id uuid.UUID) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, caller, b); err != nil {
		return nil, err
	}

	switch b.State {
	case StateCancelled:
		return nil, ErrAlreadyCancelled
	case StateCompleted:
		return nil, ErrCancelCompleted
	}

	if err := s.bookings.UpdateState(ctx, id, StateCancelled); err != nil {
		return nil, err
	}
	b.State = StateCancelled
	return b, nil
}

// List returns the bookings visible to the caller: admins see all,
// patients their own, practitioners their agenda.
func (s *Service) List(ctx context.Context, caller Caller, limit, offset int) ([]*Booking, int, error) {
	switch caller.Role {
	case auth.RoleAdmin:
		return s.bookings.ListAll(ctx, limit, offset)
	case auth.RolePractitioner:
		pract, err := s.practitioners.GetByUserID(ctx, caller.UserID)
		if err != nil {
			if errors.Is(err, directory.ErrNotFound) {
				return []*Booking{}, 0, nil
			}
			return nil, 0, err
		}
		return s.bookings.ListByPractitioner(ctx, pract.ID, limit, offset)
	default:
		return s.bookings.ListByPatient(ctx, caller.UserID, limit, offset)
	}
}
