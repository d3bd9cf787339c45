package sqlite

import (
	"context"
	"time"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
)

type medicalRecordsRepo struct {
	q querier
}

const medicalRecordColumns = `id, patient_id, doctor_id, diagnosis, treatment, recorded_at`

func scanMedicalRecord(row interface{ Scan(...any) error }) (domain.MedicalRecord, error) {
	var m domain.MedicalRecord
	err := row.Scan(&m.ID, &m.PatientID, &m.DoctorID, &m.Diagnosis, &m.Treatment, &m.RecordedAt)
	if err != nil {
		return domain.MedicalRecord{}, mapNotFound(err)
	}
	return m, nil
}

func (r *medicalRecordsRepo) GetByID(ctx context.Context, id string) (domain.MedicalRecord, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+medicalRecordColumns+` FROM medical_records WHERE id = ?`, id)
	return scanMedicalRecord(row)
}

func (r *medicalRecordsRepo) Create(ctx context.Context, m domain.MedicalRecord) error {
	if m.RecordedAt.IsZero() {
		m.RecordedAt = time.Now().UTC()
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO medical_records (id, patient_id, doctor_id, diagnosis, treatment, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.PatientID, m.DoctorID, m.Diagnosis, m.Treatment, m.RecordedAt)
	return mapConstraint(err)
}

func (r *medicalRecordsRepo) Update(ctx context.Context, m domain.MedicalRecord) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE medical_records SET diagnosis = ?, treatment = ?, recorded_at = ? WHERE id = ?`,
		m.Diagnosis, m.Treatment, m.RecordedAt, m.ID)
	return err
}

func (r *medicalRecordsRepo) ListByPatient(ctx context.Context, patientID string) ([]domain.MedicalRecord, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+medicalRecordColumns+` FROM medical_records WHERE patient_id = ?
		 ORDER BY recorded_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.MedicalRecord
	for rows.Next() {
		m, err := scanMedicalRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}
