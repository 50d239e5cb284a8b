package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"vetcare-portal/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (
			id, pet_id, owner_id,
			appointment_date, service_type, status,
			notes, veterinarian_notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.PetID,
		a.OwnerUserID,
		a.Date,
		string(a.ServiceType),
		string(a.Status),
		a.Notes,
		a.VeterinarianNotes,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

// Update: sin versión ni lock optimista, gana la última escritura.
func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			status = $2,
			veterinarian_notes = $3,
			updated_at = $4
		WHERE id = $1
	`,
		a.ID,
		string(a.Status),
		a.VeterinarianNotes,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, appointments.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, pet_id, owner_id,
			appointment_date, service_type, status,
			notes, veterinarian_notes,
			created_at, updated_at
		FROM appointments
		WHERE id = $1
	`, id)

	var (
		a        appointments.Appointment
		st, stat string
		vet      sql.NullString
	)
	if err := row.Scan(
		&a.ID,
		&a.PetID,
		&a.OwnerUserID,
		&a.Date,
		&st,
		&stat,
		&a.Notes,
		&vet,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointments.Appointment{}, appointments.ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	a.ServiceType = appointments.ServiceType(st)
	a.Status = appointments.Status(stat)
	a.VeterinarianNotes = nullString(vet)
	return a, nil
}

const listWithPet = `
	SELECT
		a.id, a.pet_id, a.owner_id,
		a.appointment_date, a.service_type, a.status,
		a.notes, a.veterinarian_notes,
		a.created_at, a.updated_at,
		p.id, p.name, p.species, p.breed, p.photo_url
	FROM appointments a
	LEFT JOIN pets p ON p.id = a.pet_id`

func (r *AppointmentsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]appointments.WithPet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}
	return r.query(ctx, listWithPet+`
		WHERE a.owner_id = $1
		ORDER BY a.appointment_date ASC
	`, ownerUserID)
}

func (r *AppointmentsRepo) ListAll(ctx context.Context) ([]appointments.WithPet, error) {
	return r.query(ctx, listWithPet+`
		ORDER BY a.appointment_date ASC
	`)
}

func (r *AppointmentsRepo) query(ctx context.Context, q string, args ...any) ([]appointments.WithPet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.WithPet, 0)
	for rows.Next() {
		var (
			a        appointments.WithPet
			st, stat string
			vet      sql.NullString

			petID, petName, petSpecies sql.NullString
			petBreed, petPhoto         sql.NullString
		)
		if err := rows.Scan(
			&a.ID,
			&a.PetID,
			&a.OwnerUserID,
			&a.Date,
			&st,
			&stat,
			&a.Notes,
			&vet,
			&a.CreatedAt,
			&a.UpdatedAt,
			&petID,
			&petName,
			&petSpecies,
			&petBreed,
			&petPhoto,
		); err != nil {
			return nil, err
		}

		a.ServiceType = appointments.ServiceType(st)
		a.Status = appointments.Status(stat)
		a.VeterinarianNotes = nullString(vet)
		if petID.Valid {
			a.Pet = &appointments.PetSummary{
				ID:       petID.String,
				Name:     petName.String,
				Species:  petSpecies.String,
				Breed:    nullString(petBreed),
				PhotoURL: nullString(petPhoto),
			}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
