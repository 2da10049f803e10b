package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antonellamino/clinica-medica-mvp/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) db.Queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return db.WithTx(ctx, r.pool, fn)
}

const uniqueViolation = "23505"

// mapCreateError translates a unique violation on the active-slot index
// into ErrSlotTaken; everything else passes through.
func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrSlotTaken
	}
	return err
}

func (r *repoPG) Create(ctx context.Context, b *Booking) error {
	b.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO booking (id, patient_id, practitioner_id, date, slot, state, reason)
		VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,''))`,
		b.ID, b.PatientID, b.PractitionerID, b.Date, b.Slot, b.State, b.Reason)
	return mapCreateError(err)
}

const bookingCols = `b.id, b.patient_id, b.practitioner_id, to_char(b.date, 'YYYY-MM-DD'),
	b.slot, b.state, COALESCE(b.reason, ''),
	u.first_name || ' ' || u.last_name,
	p.first_name || ' ' || p.last_name,
	s.name, b.created_at, b.updated_at`

const bookingJoins = `
	FROM booking b
	JOIN app_user u ON u.id = b.patient_id
	JOIN practitioner p ON p.id = b.practitioner_id
	JOIN specialty s ON s.id = p.specialty_id`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.PatientID, &b.PractitionerID, &b.Date,
		&b.Slot, &b.State, &b.Reason,
		&b.PatientName, &b.PractitionerName, &b.SpecialtyName,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b, err := scanBooking(r.conn(ctx).QueryRow(ctx,
		`SELECT `+bookingCols+bookingJoins+` WHERE b.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (r *repoPG) UpdateState(ctx context.Context, id uuid.UUID, state State) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE booking SET state = $2, updated_at = NOW() WHERE id = $1`, id, state)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *repoPG) TakenSlots(ctx context.Context, practitionerID uuid.UUID, date string) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT slot FROM booking
		WHERE practitioner_id = $1 AND date = $2 AND state <> 'cancelled'
		ORDER BY slot`, practitionerID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func (r *repoPG) list(ctx context.Context, where string, arg any, limit, offset int) ([]*Booking, int, error) {
	var args []any
	countQuery := `SELECT COUNT(*) FROM booking b`
	query := `SELECT ` + bookingCols + bookingJoins
	n := 1
	if where != "" {
		countQuery += ` WHERE ` + where
		query += ` WHERE ` + where
		args = append(args, arg)
		n = 2
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY b.date DESC, b.slot DESC LIMIT $%d OFFSET $%d`, n, n+1)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListAll(ctx context.Context, limit, offset int) ([]*Booking, int, error) {
	return r.list(ctx, "", nil, limit, offset)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Booking, int, error) {
	return r.list(ctx, `b.patient_id = $1`, patientID, limit, offset)
}

func (r *repoPG) ListByPractitioner(ctx context.Context, practitionerID uuid.UUID, limit, offset int) ([]*Booking, int, error) {
	return r.list(ctx, `b.practitioner_id = $1`, practitionerID, limit, offset)
}
