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
	"github.com/meadowhealth/clinic/pkg/slogx"
)

// ProfileService reads and updates the role-specific profiles and runs the
// doctor-profile backfill sweep.
type ProfileService struct {
	Store store.Store
}

type PatientProfileUpdate struct {
	FullName    string
	DateOfBirth time.Time
	Address     string
	Phone       string
}

func (u PatientProfileUpdate) validate() *ValidationError {
	fields := make(map[string]string)
	if strings.TrimSpace(u.FullName) == "" {
		fields["full_name"] = "Full name is required."
	}
	if u.DateOfBirth.IsZero() {
		fields["date_of_birth"] = "Date of birth is required."
	}
	if strings.TrimSpace(u.Address) == "" {
		fields["address"] = "Address is required."
	}
	if strings.TrimSpace(u.Phone) == "" {
		fields["phone"] = "Phone is required."
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// GetOwnPatientProfile resolves the caller's patient profile.
func (s *ProfileService) GetOwnPatientProfile(ctx context.Context, userID string) (domain.PatientProfile, error) {
	return s.Store.PatientProfiles().GetByUserID(ctx, userID)
}

// UpdateOwnPatientProfile lets a patient edit their own profile only; the
// profile is resolved through the session's user id, never a form value.
func (s *ProfileService) UpdateOwnPatientProfile(ctx context.Context, userID string, in PatientProfileUpdate) error {
	if verr := in.validate(); verr != nil {
		return verr
	}

	profile, err := s.Store.PatientProfiles().GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup profile: %w", err)
	}

	dob := in.DateOfBirth
	profile.FullName = in.FullName
	profile.DateOfBirth = &dob
	profile.Address = in.Address
	profile.Phone = in.Phone

	return s.Store.PatientProfiles().Update(ctx, profile)
}

// GetOwnDoctorProfile resolves the caller's doctor profile.
func (s *ProfileService) GetOwnDoctorProfile(ctx context.Context, userID string) (domain.DoctorProfile, error) {
	return s.Store.DoctorProfiles().GetByUserID(ctx, userID)
}

// GetPatientProfile is the doctor-side view of any patient profile by id.
func (s *ProfileService) GetPatientProfile(ctx context.Context, patientID string) (domain.PatientProfile, error) {
	return s.Store.PatientProfiles().GetByID(ctx, patientID)
}

// SearchPatients filters patient profiles by name; empty query lists all.
func (s *ProfileService) SearchPatients(ctx context.Context, query string) ([]domain.PatientProfile, error) {
	return s.Store.PatientProfiles().SearchByName(ctx, strings.TrimSpace(query))
}

// ListDoctors returns every doctor profile, for the booking form.
func (s *ProfileService) ListDoctors(ctx context.Context) ([]domain.DoctorProfile, error) {
	return s.Store.DoctorProfiles().List(ctx)
}

// BackfillDoctorProfiles creates a profile for any doctor identity that
// lacks one, using the username as the placeholder name. Registration
// already provisions profiles transactionally, so this is a repair sweep for
// rows imported or damaged out of band. Idempotent; safe to run repeatedly.
func (s *ProfileService) BackfillDoctorProfiles(ctx context.Context) (int, error) {
	doctors, err := s.Store.Users().ListUsersByRole(ctx, domain.RoleDoctor)
	if err != nil {
		return 0, fmt.Errorf("list doctors: %w", err)
	}

	created := 0
	for _, doctor := range doctors {
		_, err := s.Store.DoctorProfiles().GetByUserID(ctx, doctor.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return created, fmt.Errorf("lookup doctor profile: %w", err)
		}

		err = s.Store.DoctorProfiles().Create(ctx, domain.DoctorProfile{
			ID:       idx.New().String(),
			UserID:   doctor.ID,
			FullName: doctor.Username,
		})
		if err != nil {
			// A concurrent sweep may have won the race; that still counts
			// as repaired.
			if errors.Is(err, store.ErrAlreadyExists) {
				continue
			}
			return created, fmt.Errorf("create doctor profile: %w", err)
		}
		created++
	}

	if created > 0 {
		slogx.FromContext(ctx).Info("backfilled doctor profiles", "created", created)
	}
	return created, nil
}
