package sqlite

import (
	"context"
	"database/sql"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
)

type patientProfilesRepo struct {
	q querier
}

const patientProfileColumns = `id, user_id, full_name, date_of_birth, address, phone`

func scanPatientProfile(row interface{ Scan(...any) error }) (domain.PatientProfile, error) {
	var (
		p   domain.PatientProfile
		dob sql.NullTime
	)
	err := row.Scan(&p.ID, &p.UserID, &p.FullName, &dob, &p.Address, &p.Phone)
	if err != nil {
		return domain.PatientProfile{}, mapNotFound(err)
	}
	if dob.Valid {
		t := dob.Time
		p.DateOfBirth = &t
	}
	return p, nil
}

func (r *patientProfilesRepo) GetByID(ctx context.Context, id string) (domain.PatientProfile, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+patientProfileColumns+` FROM patient_profiles WHERE id = ?`, id)
	return scanPatientProfile(row)
}

func (r *patientProfilesRepo) GetByUserID(ctx context.Context, userID string) (domain.PatientProfile, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+patientProfileColumns+` FROM patient_profiles WHERE user_id = ?`, userID)
	return scanPatientProfile(row)
}

func (r *patientProfilesRepo) Create(ctx context.Context, p domain.PatientProfile) error {
	var dob sql.NullTime
	if p.DateOfBirth != nil {
		dob = sql.NullTime{Time: *p.DateOfBirth, Valid: true}
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO patient_profiles (id, user_id, full_name, date_of_birth, address, phone)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.FullName, dob, p.Address, p.Phone)
	return mapConstraint(err)
}

func (r *patientProfilesRepo) Update(ctx context.Context, p domain.PatientProfile) error {
	var dob sql.NullTime
	if p.DateOfBirth != nil {
		dob = sql.NullTime{Time: *p.DateOfBirth, Valid: true}
	}
	_, err := r.q.ExecContext(ctx,
		`UPDATE patient_profiles SET full_name = ?, date_of_birth = ?, address = ?, phone = ?
		 WHERE id = ?`,
		p.FullName, dob, p.Address, p.Phone, p.ID)
	return err
}

func (r *patientProfilesRepo) SearchByName(ctx context.Context, query string) ([]domain.PatientProfile, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+patientProfileColumns+` FROM patient_profiles
		 WHERE full_name LIKE '%' || ? || '%' COLLATE NOCASE
		 ORDER BY full_name`, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.PatientProfile
	for rows.Next() {
		p, err := scanPatientProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
