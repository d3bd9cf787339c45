package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/internal/clinic/store"
	"github.com/meadowhealth/clinic/pkg/idx"
)

// RecordsService manages the clinical records a doctor authors against a
// patient: medical records, lab results and prescriptions. Patients get
// read-only access to their own.
type RecordsService struct {
	Store store.Store
}

// resolveDoctor maps the calling doctor's user id to their profile, which is
// what records reference.
func (s *RecordsService) resolveDoctor(ctx context.Context, doctorUserID string) (domain.DoctorProfile, error) {
	profile, err := s.Store.DoctorProfiles().GetByUserID(ctx, doctorUserID)
	if err != nil {
		return domain.DoctorProfile{}, fmt.Errorf("lookup doctor profile: %w", err)
	}
	return profile, nil
}

// resolvePatient verifies the target patient profile exists.
func (s *RecordsService) resolvePatient(ctx context.Context, patientID string) (domain.PatientProfile, error) {
	return s.Store.PatientProfiles().GetByID(ctx, patientID)
}

type MedicalRecordInput struct {
	Diagnosis  string
	Treatment  string
	RecordedAt time.Time
}

func (in MedicalRecordInput) validate() *ValidationError {
	fields := make(map[string]string)
	if strings.TrimSpace(in.Diagnosis) == "" {
		fields["diagnosis"] = "Diagnosis is required."
	}
	if strings.TrimSpace(in.Treatment) == "" {
		fields["treatment"] = "Treatment is required."
	}
	if in.RecordedAt.IsZero() {
		fields["date"] = "Date is required."
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// AddMedicalRecord creates a record authored by the calling doctor. The
// free-text fields are HTML-escaped at the boundary so whatever renders them
// later cannot be tricked into emitting markup.
func (s *RecordsService) AddMedicalRecord(ctx context.Context, doctorUserID, patientID string, in MedicalRecordInput) (domain.MedicalRecord, error) {
	if verr := in.validate(); verr != nil {
		return domain.MedicalRecord{}, verr
	}
	doctor, err := s.resolveDoctor(ctx, doctorUserID)
	if err != nil {
		return domain.MedicalRecord{}, err
	}
	patient, err := s.resolvePatient(ctx, patientID)
	if err != nil {
		return domain.MedicalRecord{}, err
	}

	record := domain.MedicalRecord{
		ID:         idx.New().String(),
		PatientID:  patient.ID,
		DoctorID:   doctor.ID,
		Diagnosis:  html.EscapeString(in.Diagnosis),
		Treatment:  html.EscapeString(in.Treatment),
		RecordedAt: in.RecordedAt,
	}
	if err := s.Store.MedicalRecords().Create(ctx, record); err != nil {
		return domain.MedicalRecord{}, fmt.Errorf("create medical record: %w", err)
	}
	return record, nil
}

// EditMedicalRecord updates a record. Only the authoring doctor may edit it.
func (s *RecordsService) EditMedicalRecord(ctx context.Context, doctorUserID, recordID string, in MedicalRecordInput) error {
	if verr := in.validate(); verr != nil {
		return verr
	}
	doctor, err := s.resolveDoctor(ctx, doctorUserID)
	if err != nil {
		return err
	}

	record, err := s.Store.MedicalRecords().GetByID(ctx, recordID)
	if err != nil {
		return err
	}
	if record.DoctorID != doctor.ID {
		return ErrNotOwner
	}

	record.Diagnosis = html.EscapeString(in.Diagnosis)
	record.Treatment = html.EscapeString(in.Treatment)
	record.RecordedAt = in.RecordedAt
	return s.Store.MedicalRecords().Update(ctx, record)
}

// MedicalHistory lists a patient's records, newest first.
func (s *RecordsService) MedicalHistory(ctx context.Context, patientID string) ([]domain.MedicalRecord, error) {
	return s.Store.MedicalRecords().ListByPatient(ctx, patientID)
}

// OwnMedicalHistory is the patient-facing variant, resolved through the
// caller's own profile.
func (s *RecordsService) OwnMedicalHistory(ctx context.Context, patientUserID string) ([]domain.MedicalRecord, error) {
	profile, err := s.Store.PatientProfiles().GetByUserID(ctx, patientUserID)
	if err != nil {
		return nil, fmt.Errorf("lookup patient profile: %w", err)
	}
	return s.Store.MedicalRecords().ListByPatient(ctx, profile.ID)
}

type LabResultInput struct {
	TestName   string
	Result     string
	RecordedAt time.Time
}

func (in LabResultInput) validate() *ValidationError {
	fields := make(map[string]string)
	if strings.TrimSpace(in.TestName) == "" {
		fields["test_name"] = "Test name is required."
	}
	if strings.TrimSpace(in.Result) == "" {
		fields["result"] = "Result is required."
	}
	if in.RecordedAt.IsZero() {
		fields["date"] = "Date is required."
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// AddLabResult records a lab result authored by the calling doctor.
func (s *RecordsService) AddLabResult(ctx context.Context, doctorUserID, patientID string, in LabResultInput) (domain.LabResult, error) {
	if verr := in.validate(); verr != nil {
		return domain.LabResult{}, verr
	}
	doctor, err := s.resolveDoctor(ctx, doctorUserID)
	if err != nil {
		return domain.LabResult{}, err
	}
	patient, err := s.resolvePatient(ctx, patientID)
	if err != nil {
		return domain.LabResult{}, err
	}

	result := domain.LabResult{
		ID:         idx.New().String(),
		PatientID:  patient.ID,
		DoctorID:   doctor.ID,
		TestName:   in.TestName,
		Result:     in.Result,
		RecordedAt: in.RecordedAt,
	}
	if err := s.Store.LabResults().Create(ctx, result); err != nil {
		return domain.LabResult{}, fmt.Errorf("create lab result: %w", err)
	}
	return result, nil
}

// LabResults lists a patient's lab results.
func (s *RecordsService) LabResults(ctx context.Context, patientID string) ([]domain.LabResult, error) {
	return s.Store.LabResults().ListByPatient(ctx, patientID)
}

// OwnLabResults lists the calling patient's lab results.
func (s *RecordsService) OwnLabResults(ctx context.Context, patientUserID string) ([]domain.LabResult, error) {
	profile, err := s.Store.PatientProfiles().GetByUserID(ctx, patientUserID)
	if err != nil {
		return nil, fmt.Errorf("lookup patient profile: %w", err)
	}
	return s.Store.LabResults().ListByPatient(ctx, profile.ID)
}

type PrescriptionInput struct {
	Medication      string
	Dosage          string
	Instructions    string
	MedicalRecordID string // optional link to an existing medical record
	RecordedAt      time.Time
}

func (in PrescriptionInput) validate() *ValidationError {
	fields := make(map[string]string)
	if strings.TrimSpace(in.Medication) == "" {
		fields["medication"] = "Medication is required."
	}
	if strings.TrimSpace(in.Dosage) == "" {
		fields["dosage"] = "Dosage is required."
	}
	if strings.TrimSpace(in.Instructions) == "" {
		fields["instructions"] = "Instructions are required."
	}
	if in.RecordedAt.IsZero() {
		fields["date"] = "Date is required."
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// AddPrescription records a prescription authored by the calling doctor.
func (s *RecordsService) AddPrescription(ctx context.Context, doctorUserID, patientID string, in PrescriptionInput) (domain.Prescription, error) {
	if verr := in.validate(); verr != nil {
		return domain.Prescription{}, verr
	}
	doctor, err := s.resolveDoctor(ctx, doctorUserID)
	if err != nil {
		return domain.Prescription{}, err
	}
	patient, err := s.resolvePatient(ctx, patientID)
	if err != nil {
		return domain.Prescription{}, err
	}

	if in.MedicalRecordID != "" {
		record, err := s.Store.MedicalRecords().GetByID(ctx, in.MedicalRecordID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Prescription{}, fieldError("medical_record_id", "Linked medical record does not exist.")
			}
			return domain.Prescription{}, err
		}
		if record.PatientID != patient.ID {
			return domain.Prescription{}, fieldError("medical_record_id", "Linked medical record belongs to a different patient.")
		}
	}

	prescription := domain.Prescription{
		ID:              idx.New().String(),
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		MedicalRecordID: in.MedicalRecordID,
		Medication:      in.Medication,
		Dosage:          in.Dosage,
		Instructions:    in.Instructions,
		RecordedAt:      in.RecordedAt,
	}
	if err := s.Store.Prescriptions().Create(ctx, prescription); err != nil {
		return domain.Prescription{}, fmt.Errorf("create prescription: %w", err)
	}
	return prescription, nil
}

// Prescriptions lists a patient's prescriptions.
func (s *RecordsService) Prescriptions(ctx context.Context, patientID string) ([]domain.Prescription, error) {
	return s.Store.Prescriptions().ListByPatient(ctx, patientID)
}

// OwnPrescriptions lists the calling patient's prescriptions.
func (s *RecordsService) OwnPrescriptions(ctx context.Context, patientUserID string) ([]domain.Prescription, error) {
	profile, err := s.Store.PatientProfiles().GetByUserID(ctx, patientUserID)
	if err != nil {
		return nil, fmt.Errorf("lookup patient profile: %w", err)
	}
	return s.Store.Prescriptions().ListByPatient(ctx, profile.ID)
}
