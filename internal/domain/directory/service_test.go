package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repositories --

type mockSpecialtyRepo struct {
	specialties map[uuid.UUID]*Specialty
}

func newMockSpecialtyRepo() *mockSpecialtyRepo {
	return &mockSpecialtyRepo{specialties: make(map[uuid.UUID]*Specialty)}
}

func (m *mockSpecialtyRepo) Create(_ context.Context, s *Specialty) error {
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	m.specialties[s.ID] = s
	return nil
}

func (m *mockSpecialtyRepo) GetByID(_ context.Context, id uuid.UUID) (*Specialty, error) {
	s, ok := m.specialties[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *mockSpecialtyRepo) List(_ context.Context) ([]*Specialty, error) {
	var result []*Specialty
	for _, s := range m.specialties {
		result = append(result, s)
	}
	return result, nil
}

type mockPractitionerRepo struct {
	practitioners map[uuid.UUID]*Practitioner
}

func newMockPractitionerRepo() *mockPractitionerRepo {
	return &mockPractitionerRepo{practitioners: make(map[uuid.UUID]*Practitioner)}
}

func (m *mockPractitionerRepo) Create(_ context.Context, p *Practitioner) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.practitioners[p.ID] = p
	return nil
}

func (m *mockPractitionerRepo) GetByID(_ context.Context, id uuid.UUID) (*Practitioner, error) {
	p, ok := m.practitioners[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockPractitionerRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*Practitioner, error) {
	for _, p := range m.practitioners {
		if p.UserID != nil && *p.UserID == userID {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockPractitionerRepo) Update(_ context.Context, p *Practitioner) error {
	if _, ok := m.practitioners[p.ID]; !ok {
		return ErrNotFound
	}
	m.practitioners[p.ID] = p
	return nil
}

func (m *mockPractitionerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.practitioners, id)
	return nil
}

func (m *mockPractitionerRepo) List(_ context.Context, specialtyID *uuid.UUID, limit, offset int) ([]*Practitioner, int, error) {
	var result []*Practitioner
	for _, p := range m.practitioners {
		if specialtyID == nil || p.SpecialtyID == *specialtyID {
			result = append(result, p)
		}
	}
	return result, len(result), nil
}

// -- Fixtures --

func newTestService(t *testing.T) (*Service, *Specialty) {
	t.Helper()
	specialties := newMockSpecialtyRepo()
	practitioners := newMockPractitionerRepo()
	svc := NewService(specialties, practitioners)

	sp := &Specialty{Name: "Cardiology"}
	if err := svc.CreateSpecialty(context.Background(), sp); err != nil {
		t.Fatalf("create specialty: %v", err)
	}
	return svc, sp
}

func validPractitioner(t *testing.T, specialtyID uuid.UUID) *Practitioner {
	t.Helper()
	weekdays, err := ParseWeekdays([]string{"monday", "wednesday", "friday"})
	if err != nil {
		t.Fatalf("parse weekdays: %v", err)
	}
	return &Practitioner{
		FirstName:   "Laura",
		LastName:    "Gomez",
		Email:       "laura@clinic.test",
		SpecialtyID: specialtyID,
		StartTime:   "09:00",
		EndTime:     "17:00",
		Weekdays:    weekdays,
	}
}

// -- Tests --

func TestCreateSpecialty_NameRequired(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.CreateSpecialty(context.Background(), &Specialty{Name: "  "}); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestCreatePractitioner(t *testing.T) {
	svc, sp := newTestService(t)
	p := validPractitioner(t, sp.ID)

	if err := svc.CreatePractitioner(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
}

func TestCreatePractitioner_UnknownSpecialty(t *testing.T) {
	svc, _ := newTestService(t)
	p := validPractitioner(t, uuid.New())

	err := svc.CreatePractitioner(context.Background(), p)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestCreatePractitioner_InvalidSchedule(t *testing.T) {
	svc, sp := newTestService(t)

	cases := []struct {
		name     string
		mutate   func(*Practitioner)
	}{
		{"start after end", func(p *Practitioner) { p.StartTime = "18:00"; p.EndTime = "09:00" }},
		{"start equals end", func(p *Practitioner) { p.StartTime = "09:00"; p.EndTime = "09:00" }},
		{"malformed start", func(p *Practitioner) { p.StartTime = "9am" }},
		{"malformed end", func(p *Practitioner) { p.EndTime = "25:00" }},
		{"no weekdays", func(p *Practitioner) { p.Weekdays = nil }},
	}
	for _, tc := range cases {
		p := validPractitioner(t, sp.ID)
		tc.mutate(p)
		if err := svc.CreatePractitioner(context.Background(), p); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestUpdatePractitioner_PartialUpdateKeepsSchedule(t *testing.T) {
	svc, sp := newTestService(t)
	p := validPractitioner(t, sp.ID)
	if err := svc.CreatePractitioner(context.Background(), p); err != nil {
		t.Fatal(err)
	}

	update := &Practitioner{ID: p.ID, FirstName: "Laura Beatriz"}
	if err := svc.UpdatePractitioner(context.Background(), update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if update.StartTime != "09:00" || update.EndTime != "17:00" {
		t.Errorf("expected schedule preserved, got %s-%s", update.StartTime, update.EndTime)
	}
	if len(update.Weekdays) != 3 {
		t.Errorf("expected weekdays preserved, got %v", update.Weekdays)
	}
}

func TestGetPractitionerByUserID(t *testing.T) {
	svc, sp := newTestService(t)
	userID := uuid.New()
	p := validPractitioner(t, sp.ID)
	p.UserID = &userID
	if err := svc.CreatePractitioner(context.Background(), p); err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetPractitionerByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != p.ID {
		t.Error("expected practitioner resolved by account id")
	}
}

func TestListPractitioners_FilterBySpecialty(t *testing.T) {
	svc, sp := newTestService(t)
	other := &Specialty{Name: "Dermatology"}
	if err := svc.CreateSpecialty(context.Background(), other); err != nil {
		t.Fatal(err)
	}

	if err := svc.CreatePractitioner(context.Background(), validPractitioner(t, sp.ID)); err != nil {
		t.Fatal(err)
	}
	p2 := validPractitioner(t, other.ID)
	p2.Email = "other@clinic.test"
	if err := svc.CreatePractitioner(context.Background(), p2); err != nil {
		t.Fatal(err)
	}

	all, total, err := svc.ListPractitioners(context.Background(), nil, 20, 0)
	if err != nil || total != 2 || len(all) != 2 {
		t.Errorf("expected 2 practitioners, got %d (err %v)", total, err)
	}

	filtered, total, err := svc.ListPractitioners(context.Background(), &sp.ID, 20, 0)
	if err != nil || total != 1 || len(filtered) != 1 {
		t.Errorf("expected 1 practitioner for specialty, got %d (err %v)", total, err)
	}
}
