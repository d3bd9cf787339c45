package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
)

type prescriptionsRepo struct {
	q querier
}

func (r *prescriptionsRepo) Create(ctx context.Context, p domain.Prescription) error {
	if p.RecordedAt.IsZero() {
		p.RecordedAt = time.Now().UTC()
	}
	var recordID sql.NullString
	if p.MedicalRecordID != "" {
		recordID = sql.NullString{String: p.MedicalRecordID, Valid: true}
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO prescriptions (id, patient_id, doctor_id, medical_record_id, medication, dosage, instructions, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.PatientID, p.DoctorID, recordID, p.Medication, p.Dosage, p.Instructions, p.RecordedAt)
	return mapConstraint(err)
}

func (r *prescriptionsRepo) ListByPatient(ctx context.Context, patientID string) ([]domain.Prescription, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, patient_id, doctor_id, medical_record_id, medication, dosage, instructions, recorded_at
		 FROM prescriptions WHERE patient_id = ? ORDER BY recorded_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prescriptions []domain.Prescription
	for rows.Next() {
		var (
			p        domain.Prescription
			recordID sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.PatientID, &p.DoctorID, &recordID, &p.Medication, &p.Dosage, &p.Instructions, &p.RecordedAt); err != nil {
			return nil, err
		}
		if recordID.Valid {
			p.MedicalRecordID = recordID.String
		}
		prescriptions = append(prescriptions, p)
	}
	return prescriptions, rows.Err()
}
