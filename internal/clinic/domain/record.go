package domain

import "time"

// MedicalRecord is authored by a doctor against a patient profile.
// Diagnosis and treatment are HTML-escaped before storage.
type MedicalRecord struct {
	ID         string
	PatientID  string
	DoctorID   string
	Diagnosis  string
	Treatment  string
	RecordedAt time.Time
}

type LabResult struct {
	ID         string
	PatientID  string
	DoctorID   string
	TestName   string
	Result     string
	RecordedAt time.Time
}

type Prescription struct {
	ID              string
	PatientID       string
	DoctorID        string
	MedicalRecordID string // optional link to a medical record, empty if unlinked
	Medication      string
	Dosage          string
	Instructions    string
	RecordedAt      time.Time
}
