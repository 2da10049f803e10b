package directory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Specialty maps to the specialty table.
type Specialty struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Practitioner maps to the practitioner table. The weekly schedule
// (start_time, end_time, weekdays) is owned by the practitioner row and is
// created with it; the booking core reads it and never writes it.
type Practitioner struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	UserID        *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	FirstName     string     `db:"first_name" json:"first_name"`
	LastName      string     `db:"last_name" json:"last_name"`
	Email         string     `db:"email" json:"email"`
	SpecialtyID   uuid.UUID  `db:"specialty_id" json:"specialty_id"`
	SpecialtyName string     `db:"specialty_name" json:"specialty_name,omitempty"`
	StartTime     string     `db:"start_time" json:"start_time"` // HH:MM
	EndTime       string     `db:"end_time" json:"end_time"`     // HH:MM
	Weekdays      Weekdays   `db:"weekdays" json:"weekdays"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// FullName returns the display name used in booking responses.
func (p *Practitioner) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}
