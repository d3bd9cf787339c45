package sqlite

import (
	"context"
	"time"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
)

type labResultsRepo struct {
	q querier
}

func (r *labResultsRepo) Create(ctx context.Context, lr domain.LabResult) error {
	if lr.RecordedAt.IsZero() {
		lr.RecordedAt = time.Now().UTC()
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO lab_results (id, patient_id, doctor_id, test_name, result, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		lr.ID, lr.PatientID, lr.DoctorID, lr.TestName, lr.Result, lr.RecordedAt)
	return mapConstraint(err)
}

func (r *labResultsRepo) ListByPatient(ctx context.Context, patientID string) ([]domain.LabResult, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, patient_id, doctor_id, test_name, result, recorded_at
		 FROM lab_results WHERE patient_id = ? ORDER BY recorded_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.LabResult
	for rows.Next() {
		var lr domain.LabResult
		if err := rows.Scan(&lr.ID, &lr.PatientID, &lr.DoctorID, &lr.TestName, &lr.Result, &lr.RecordedAt); err != nil {
			return nil, err
		}
		results = append(results, lr)
	}
	return results, rows.Err()
}
