package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/internal/clinic/store"
)

// fixture registers a patient and two doctors and returns their user ids
// plus the first doctor's profile id.
type clinicFixture struct {
	store       *clinicStores
	patientUser string
	doctorUser  string
	doctor2User string
	doctorID    string
	doctor2ID   string
}

type clinicStores struct {
	Accounts     *AccountService
	Profiles     *ProfileService
	Appointments *AppointmentService
	Records      *RecordsService
}

func newClinicFixture(t *testing.T) *clinicFixture {
	t.Helper()
	st := newTestStore(t)
	ctx := context.Background()

	stores := &clinicStores{
		Accounts:     &AccountService{Store: st},
		Profiles:     &ProfileService{Store: st},
		Appointments: &AppointmentService{Store: st},
		Records:      &RecordsService{Store: st},
	}

	patient, err := stores.Accounts.Register(ctx, registerInput("alice", domain.RolePatient))
	require.NoError(t, err)
	doctor, err := stores.Accounts.Register(ctx, registerInput("drsmith", domain.RoleDoctor))
	require.NoError(t, err)
	doctor2, err := stores.Accounts.Register(ctx, registerInput("drjones", domain.RoleDoctor))
	require.NoError(t, err)

	dp, err := stores.Profiles.GetOwnDoctorProfile(ctx, doctor.ID)
	require.NoError(t, err)
	dp2, err := stores.Profiles.GetOwnDoctorProfile(ctx, doctor2.ID)
	require.NoError(t, err)

	return &clinicFixture{
		store:       stores,
		patientUser: patient.ID,
		doctorUser:  doctor.ID,
		doctor2User: doctor2.ID,
		doctorID:    dp.ID,
		doctor2ID:   dp2.ID,
	}
}

func (f *clinicFixture) book(t *testing.T) domain.Appointment {
	t.Helper()
	appt, err := f.store.Appointments.Book(context.Background(), f.patientUser, BookAppointmentInput{
		DoctorID:        f.doctorID,
		AppointmentTime: time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC),
		Reason:          "Annual checkup",
	})
	require.NoError(t, err)
	return appt
}

func TestAppointmentService_Book(t *testing.T) {
	f := newClinicFixture(t)
	ctx := context.Background()

	appt := f.book(t)
	require.Equal(t, domain.AppointmentPending, appt.Status, "new appointments start pending")
	require.Equal(t, f.doctorID, appt.DoctorID)

	// Visible to both sides.
	forPatient, err := f.store.Appointments.ListForPatient(ctx, f.patientUser)
	require.NoError(t, err)
	require.Len(t, forPatient, 1)

	forDoctor, err := f.store.Appointments.ListForDoctor(ctx, f.doctorUser)
	require.NoError(t, err)
	require.Len(t, forDoctor, 1)

	// Not visible to an unrelated doctor.
	forOther, err := f.store.Appointments.ListForDoctor(ctx, f.doctor2User)
	require.NoError(t, err)
	require.Empty(t, forOther)
}

func TestAppointmentService_BookValidation(t *testing.T) {
	f := newClinicFixture(t)
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		_, err := f.store.Appointments.Book(ctx, f.patientUser, BookAppointmentInput{})
		verr, ok := AsValidation(err)
		require.True(t, ok)
		require.Contains(t, verr.Fields, "doctor_id")
		require.Contains(t, verr.Fields, "appointment_time")
		require.Contains(t, verr.Fields, "reason")
	})

	t.Run("unknown doctor", func(t *testing.T) {
		_, err := f.store.Appointments.Book(ctx, f.patientUser, BookAppointmentInput{
			DoctorID:        "no-such-doctor",
			AppointmentTime: time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC),
			Reason:          "Checkup",
		})
		verr, ok := AsValidation(err)
		require.True(t, ok)
		require.Contains(t, verr.Fields, "doctor_id")
	})
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	f := newClinicFixture(t)
	ctx := context.Background()
	appt := f.book(t)

	t.Run("assigned doctor may update", func(t *testing.T) {
		err := f.store.Appointments.UpdateStatus(ctx, f.doctorUser, appt.ID, domain.AppointmentConfirmed)
		require.NoError(t, err)

		got, err := f.store.Appointments.ListForDoctor(ctx, f.doctorUser)
		require.NoError(t, err)
		require.Equal(t, domain.AppointmentConfirmed, got[0].Status)
	})

	t.Run("other doctor is rejected", func(t *testing.T) {
		err := f.store.Appointments.UpdateStatus(ctx, f.doctor2User, appt.ID, domain.AppointmentCancelled)
		require.ErrorIs(t, err, ErrNotOwner)

		// Status unchanged.
		got, err := f.store.Appointments.ListForDoctor(ctx, f.doctorUser)
		require.NoError(t, err)
		require.Equal(t, domain.AppointmentConfirmed, got[0].Status)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		err := f.store.Appointments.UpdateStatus(ctx, f.doctorUser, "no-such-appt", domain.AppointmentCancelled)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestParseAppointmentStatus(t *testing.T) {
	for _, valid := range []string{"confirmed", "completed", "cancelled"} {
		_, ok := domain.ParseAppointmentStatus(valid)
		require.True(t, ok, valid)
	}

	for _, invalid := range []string{"pending", "PENDING", "done", ""} {
		_, ok := domain.ParseAppointmentStatus(invalid)
		require.False(t, ok, invalid)
	}
}
