package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/internal/clinic/store"
	"github.com/meadowhealth/clinic/pkg/idx"
)

// AppointmentService books appointments for patients and manages status
// transitions for doctors.
type AppointmentService struct {
	Store store.Store
}

type BookAppointmentInput struct {
	DoctorID        string
	AppointmentTime time.Time
	Reason          string
}

func (in BookAppointmentInput) validate() *ValidationError {
	fields := make(map[string]string)
	if strings.TrimSpace(in.DoctorID) == "" {
		fields["doctor_id"] = "Doctor is required."
	}
	if in.AppointmentTime.IsZero() {
		fields["appointment_time"] = "Appointment time is required."
	}
	if strings.TrimSpace(in.Reason) == "" {
		fields["reason"] = "Reason is required."
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Book creates a pending appointment for the calling patient. The patient id
// comes from the caller's own profile; the doctor must exist.
func (s *AppointmentService) Book(ctx context.Context, patientUserID string, in BookAppointmentInput) (domain.Appointment, error) {
	if verr := in.validate(); verr != nil {
		return domain.Appointment{}, verr
	}

	profile, err := s.Store.PatientProfiles().GetByUserID(ctx, patientUserID)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("lookup patient profile: %w", err)
	}

	if _, err := s.Store.DoctorProfiles().GetByID(ctx, in.DoctorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, fieldError("doctor_id", "Selected doctor does not exist.")
		}
		return domain.Appointment{}, fmt.Errorf("lookup doctor profile: %w", err)
	}

	appt := domain.Appointment{
		ID:              idx.New().String(),
		PatientID:       profile.ID,
		DoctorID:        in.DoctorID,
		AppointmentTime: in.AppointmentTime,
		Reason:          in.Reason,
		Status:          domain.AppointmentPending,
	}
	if err := s.Store.Appointments().Create(ctx, appt); err != nil {
		return domain.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}
	return appt, nil
}

// ListForPatient returns the calling patient's own appointments.
func (s *AppointmentService) ListForPatient(ctx context.Context, patientUserID string) ([]domain.Appointment, error) {
	profile, err := s.Store.PatientProfiles().GetByUserID(ctx, patientUserID)
	if err != nil {
		return nil, fmt.Errorf("lookup patient profile: %w", err)
	}
	return s.Store.Appointments().ListByPatient(ctx, profile.ID)
}

// ListForDoctor returns the calling doctor's own appointments.
func (s *AppointmentService) ListForDoctor(ctx context.Context, doctorUserID string) ([]domain.Appointment, error) {
	profile, err := s.Store.DoctorProfiles().GetByUserID(ctx, doctorUserID)
	if err != nil {
		return nil, fmt.Errorf("lookup doctor profile: %w", err)
	}
	return s.Store.Appointments().ListByDoctor(ctx, profile.ID)
}

// UpdateStatus moves an appointment to confirmed/completed/cancelled. Only
// the doctor the appointment was booked with may touch it.
func (s *AppointmentService) UpdateStatus(ctx context.Context, doctorUserID, appointmentID string, status domain.AppointmentStatus) error {
	profile, err := s.Store.DoctorProfiles().GetByUserID(ctx, doctorUserID)
	if err != nil {
		return fmt.Errorf("lookup doctor profile: %w", err)
	}

	appt, err := s.Store.Appointments().GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appt.DoctorID != profile.ID {
		return ErrNotOwner
	}

	return s.Store.Appointments().UpdateStatus(ctx, appointmentID, status)
}
