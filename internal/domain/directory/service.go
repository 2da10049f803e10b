package directory

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	specialties   SpecialtyRepository
	practitioners PractitionerRepository
}

func NewService(specialties SpecialtyRepository, practitioners PractitionerRepository) *Service {
	return &Service{specialties: specialties, practitioners: practitioners}
}

// -- Specialty --

func (s *Service) CreateSpecialty(ctx context.Context, sp *Specialty) error {
	sp.Name = strings.TrimSpace(sp.Name)
	if sp.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.specialties.Create(ctx, sp)
}

func (s *Service) GetSpecialty(ctx context.Context, id uuid.UUID) (*Specialty, error) {
	return s.specialties.GetByID(ctx, id)
}

func (s *Service) ListSpecialties(ctx context.Context) ([]*Specialty, error) {
	return s.specialties.List(ctx)
}

// -- Practitioner --

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func validateSchedule(p *Practitioner) error {
	if !clockPattern.MatchString(p.StartTime) {
		return fmt.Errorf("start_time must be HH:MM, got %q", p.StartTime)
	}
	if !clockPattern.MatchString(p.EndTime) {
		return fmt.Errorf("end_time must be HH:MM, got %q", p.EndTime)
	}
	if p.StartTime >= p.EndTime {
		return fmt.Errorf("start_time %s must be before end_time %s", p.StartTime, p.EndTime)
	}
	if len(p.Weekdays) == 0 {
		return fmt.Errorf("at least one weekday is required")
	}
	return nil
}

func (s *Service) CreatePractitioner(ctx context.Context, p *Practitioner) error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if p.SpecialtyID == uuid.Nil {
		return fmt.Errorf("specialty_id is required")
	}
	if _, err := s.specialties.GetByID(ctx, p.SpecialtyID); err != nil {
		return err
	}
	if err := validateSchedule(p); err != nil {
		return err
	}
	return s.practitioners.Create(ctx, p)
}

func (s *Service) GetPractitioner(ctx context.Context, id uuid.UUID) (*Practitioner, error) {
	return s.practitioners.GetByID(ctx, id)
}

func (s *Service) GetPractitionerByUserID(ctx context.Context, userID uuid.UUID) (*Practitioner, error) {
	return s.practitioners.GetByUserID(ctx, userID)
}

func (s *Service) UpdatePractitioner(ctx context.Context, p *Practitioner) error {
	existing, err := s.practitioners.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if p.FirstName == "" {
		p.FirstName = existing.FirstName
	}
	if p.LastName == "" {
		p.LastName = existing.LastName
	}
	if p.Email == "" {
		p.Email = existing.Email
	}
	if p.SpecialtyID == uuid.Nil {
		p.SpecialtyID = existing.SpecialtyID
	} else if p.SpecialtyID != existing.SpecialtyID {
		if _, err := s.specialties.GetByID(ctx, p.SpecialtyID); err != nil {
			return err
		}
	}
	if p.StartTime == "" {
		p.StartTime = existing.StartTime
	}
	if p.EndTime == "" {
		p.EndTime = existing.EndTime
	}
	if len(p.Weekdays) == 0 {
		p.Weekdays = existing.Weekdays
	}
	if err := validateSchedule(p); err != nil {
		return err
	}
	return s.practitioners.Update(ctx, p)
}

func (s *Service) DeletePractitioner(ctx context.Context, id uuid.UUID) error {
	if _, err := s.practitioners.GetByID(ctx, id); err != nil {
		return err
	}
	return s.practitioners.Delete(ctx, id)
}

func (s *Service) ListPractitioners(ctx context.Context, specialtyID *uuid.UUID, limit, offset int) ([]*Practitioner, int, error) {
	return s.practitioners.List(ctx, specialtyID, limit, offset)
}
