package sqlite

import (
	"context"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
)

type doctorProfilesRepo struct {
	q querier
}

const doctorProfileColumns = `id, user_id, full_name, specialty, phone`

func scanDoctorProfile(row interface{ Scan(...any) error }) (domain.DoctorProfile, error) {
	var d domain.DoctorProfile
	err := row.Scan(&d.ID, &d.UserID, &d.FullName, &d.Specialty, &d.Phone)
	if err != nil {
		return domain.DoctorProfile{}, mapNotFound(err)
	}
	return d, nil
}

func (r *doctorProfilesRepo) GetByID(ctx context.Context, id string) (domain.DoctorProfile, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+doctorProfileColumns+` FROM doctor_profiles WHERE id = ?`, id)
	return scanDoctorProfile(row)
}

func (r *doctorProfilesRepo) GetByUserID(ctx context.Context, userID string) (domain.DoctorProfile, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+doctorProfileColumns+` FROM doctor_profiles WHERE user_id = ?`, userID)
	return scanDoctorProfile(row)
}

func (r *doctorProfilesRepo) Create(ctx context.Context, d domain.DoctorProfile) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO doctor_profiles (id, user_id, full_name, specialty, phone)
		 VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.UserID, d.FullName, d.Specialty, d.Phone)
	return mapConstraint(err)
}

func (r *doctorProfilesRepo) Update(ctx context.Context, d domain.DoctorProfile) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE doctor_profiles SET full_name = ?, specialty = ?, phone = ? WHERE id = ?`,
		d.FullName, d.Specialty, d.Phone, d.ID)
	return err
}

func (r *doctorProfilesRepo) List(ctx context.Context) ([]domain.DoctorProfile, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+doctorProfileColumns+` FROM doctor_profiles ORDER BY full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.DoctorProfile
	for rows.Next() {
		d, err := scanDoctorProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, d)
	}
	return profiles, rows.Err()
}
