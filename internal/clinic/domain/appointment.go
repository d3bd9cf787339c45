package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus accepts only the statuses a doctor may set through
// the status-update endpoint. Freshly booked appointments start as pending.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

type Appointment struct {
	ID              string
	PatientID       string // patient_profiles.id
	DoctorID        string // doctor_profiles.id
	AppointmentTime time.Time
	Reason          string
	Status          AppointmentStatus
	CreatedAt       time.Time
}
