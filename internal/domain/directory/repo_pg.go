package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antonellamino/clinica-medica-mvp/internal/platform/db"
)

// =========== Specialty Repository ===========

type specialtyRepoPG struct{ pool *pgxpool.Pool }

func NewSpecialtyRepoPG(pool *pgxpool.Pool) SpecialtyRepository { return &specialtyRepoPG{pool: pool} }

func (r *specialtyRepoPG) conn(ctx context.Context) db.Queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *specialtyRepoPG) Create(ctx context.Context, s *Specialty) error {
	s.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `INSERT INTO specialty (id, name) VALUES ($1,$2)`, s.ID, s.Name)
	return err
}

func (r *specialtyRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Specialty, error) {
	var s Specialty
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, name, created_at FROM specialty WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("specialty %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *specialtyRepoPG) List(ctx context.Context) ([]*Specialty, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT id, name, created_at FROM specialty ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Specialty
	for rows.Next() {
		var s Specialty
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}

// =========== Practitioner Repository ===========

type practitionerRepoPG struct{ pool *pgxpool.Pool }

func NewPractitionerRepoPG(pool *pgxpool.Pool) PractitionerRepository {
	return &practitionerRepoPG{pool: pool}
}

func (r *practitionerRepoPG) conn(ctx context.Context) db.Queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const practCols = `p.id, p.user_id, p.first_name, p.last_name, p.email, p.specialty_id,
	s.name, p.start_time, p.end_time, p.weekdays, p.created_at, p.updated_at`

func scanPractitioner(row pgx.Row) (*Practitioner, error) {
	var p Practitioner
	var weekdays []string
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Email, &p.SpecialtyID,
		&p.SpecialtyName, &p.StartTime, &p.EndTime, &weekdays, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Weekdays, err = ParseWeekdays(weekdays)
	if err != nil {
		return nil, fmt.Errorf("practitioner %s has corrupt weekday set: %w", p.ID, err)
	}
	return &p, nil
}

func (r *practitionerRepoPG) Create(ctx context.Context, p *Practitioner) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO practitioner (id, user_id, first_name, last_name, email, specialty_id,
			start_time, end_time, weekdays)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.Email, p.SpecialtyID,
		p.StartTime, p.EndTime, p.Weekdays.Strings())
	return err
}

func (r *practitionerRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Practitioner, error) {
	p, err := scanPractitioner(r.conn(ctx).QueryRow(ctx, `
		SELECT `+practCols+` FROM practitioner p
		JOIN specialty s ON s.id = p.specialty_id
		WHERE p.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("practitioner %s: %w", id, ErrNotFound)
	}
	return p, err
}

func (r *practitionerRepoPG) GetByUserID(ctx context.Context, userID uuid.UUID) (*Practitioner, error) {
	p, err := scanPractitioner(r.conn(ctx).QueryRow(ctx, `
		SELECT `+practCols+` FROM practitioner p
		JOIN specialty s ON s.id = p.specialty_id
		WHERE p.user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("practitioner for user %s: %w", userID, ErrNotFound)
	}
	return p, err
}

func (r *practitionerRepoPG) Update(ctx context.Context, p *Practitioner) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE practitioner SET first_name=$2, last_name=$3, email=$4, specialty_id=$5,
			start_time=$6, end_time=$7, weekdays=$8, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.Email, p.SpecialtyID,
		p.StartTime, p.EndTime, p.Weekdays.Strings())
	return err
}

func (r *practitionerRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM practitioner WHERE id = $1`, id)
	return err
}

func (r *practitionerRepoPG) List(ctx context.Context, specialtyID *uuid.UUID, limit, offset int) ([]*Practitioner, int, error) {
	where := ``
	args := []interface{}{}
	if specialtyID != nil {
		where = ` WHERE p.specialty_id = $1`
		args = append(args, *specialtyID)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM practitioner p` + where
	if err := r.conn(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+practCols+` FROM practitioner p
		JOIN specialty s ON s.id = p.specialty_id`+where+`
		ORDER BY p.last_name ASC, p.first_name ASC LIMIT $%d OFFSET $%d`,
		len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Practitioner
	for rows.Next() {
		p, err := scanPractitioner(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
