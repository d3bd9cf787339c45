package sqlite

import (
	"context"
	"time"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/internal/clinic/store"
)

type appointmentsRepo struct {
	q querier
}

const appointmentColumns = `id, patient_id, doctor_id, appointment_time, reason, status, created_at`

func scanAppointment(row interface{ Scan(...any) error }) (domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentTime, &a.Reason, &a.Status, &a.CreatedAt)
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}
	return a, nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id string) (domain.Appointment, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = ?`, id)
	return scanAppointment(row)
}

func (r *appointmentsRepo) Create(ctx context.Context, a domain.Appointment) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO appointments (id, patient_id, doctor_id, appointment_time, reason, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.PatientID, a.DoctorID, a.AppointmentTime, a.Reason, a.Status, a.CreatedAt)
	return mapConstraint(err)
}

func (r *appointmentsRepo) listBy(ctx context.Context, column, id string) ([]domain.Appointment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE `+column+` = ?
		 ORDER BY appointment_time`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *appointmentsRepo) ListByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error) {
	return r.listBy(ctx, "patient_id", patientID)
}

func (r *appointmentsRepo) ListByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error) {
	return r.listBy(ctx, "doctor_id", doctorID)
}

func (r *appointmentsRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE appointments SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}
