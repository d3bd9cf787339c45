package http

import (
	"time"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
)

// View structs shape domain types for JSON rendering. Timestamps go out in
// RFC 3339; the date-only fields keep just the date.

type PatientProfileView struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

func toPatientProfileView(p domain.PatientProfile) PatientProfileView {
	v := PatientProfileView{
		ID:       p.ID,
		FullName: p.FullName,
		Address:  p.Address,
		Phone:    p.Phone,
	}
	if p.DateOfBirth != nil {
		v.DateOfBirth = p.DateOfBirth.Format(time.DateOnly)
	}
	return v
}

type DoctorProfileView struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func toDoctorProfileView(d domain.DoctorProfile) DoctorProfileView {
	return DoctorProfileView{
		ID:        d.ID,
		FullName:  d.FullName,
		Specialty: d.Specialty,
		Phone:     d.Phone,
	}
}

type AppointmentView struct {
	ID              string `json:"id"`
	PatientID       string `json:"patient_id"`
	DoctorID        string `json:"doctor_id"`
	AppointmentTime string `json:"appointment_time"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
}

func toAppointmentView(a domain.Appointment) AppointmentView {
	return AppointmentView{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentTime: a.AppointmentTime.Format(time.RFC3339),
		Reason:          a.Reason,
		Status:          string(a.Status),
	}
}

type MedicalRecordView struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Date      string `json:"date"`
}

func toMedicalRecordView(m domain.MedicalRecord) MedicalRecordView {
	return MedicalRecordView{
		ID:        m.ID,
		PatientID: m.PatientID,
		DoctorID:  m.DoctorID,
		Diagnosis: m.Diagnosis,
		Treatment: m.Treatment,
		Date:      m.RecordedAt.Format(time.DateOnly),
	}
}

type LabResultView struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`
	TestName  string `json:"test_name"`
	Result    string `json:"result"`
	Date      string `json:"date"`
}

func toLabResultView(l domain.LabResult) LabResultView {
	return LabResultView{
		ID:        l.ID,
		PatientID: l.PatientID,
		DoctorID:  l.DoctorID,
		TestName:  l.TestName,
		Result:    l.Result,
		Date:      l.RecordedAt.Format(time.DateOnly),
	}
}

type PrescriptionView struct {
	ID              string `json:"id"`
	PatientID       string `json:"patient_id"`
	DoctorID        string `json:"doctor_id"`
	MedicalRecordID string `json:"medical_record_id,omitempty"`
	Medication      string `json:"medication"`
	Dosage          string `json:"dosage"`
	Instructions    string `json:"instructions"`
	Date            string `json:"date"`
}

func toPrescriptionView(p domain.Prescription) PrescriptionView {
	return PrescriptionView{
		ID:              p.ID,
		PatientID:       p.PatientID,
		DoctorID:        p.DoctorID,
		MedicalRecordID: p.MedicalRecordID,
		Medication:      p.Medication,
		Dosage:          p.Dosage,
		Instructions:    p.Instructions,
		Date:            p.RecordedAt.Format(time.DateOnly),
	}
}

func mapViews[T, V any](in []T, f func(T) V) []V {
	out := make([]V, 0, len(in))
	for _, item := range in {
		out = append(out, f(item))
	}
	return out
}
