package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/pkg/cryptox"
	"github.com/meadowhealth/clinic/pkg/idx"
)

func TestProfileService_UpdateOwnPatientProfile(t *testing.T) {
	st := newTestStore(t)
	accounts := &AccountService{Store: st}
	profiles := &ProfileService{Store: st}
	ctx := context.Background()

	user, err := accounts.Register(ctx, registerInput("alice", domain.RolePatient))
	require.NoError(t, err)

	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	err = profiles.UpdateOwnPatientProfile(ctx, user.ID, PatientProfileUpdate{
		FullName:    "Alice Smith",
		DateOfBirth: dob,
		Address:     "1 Main St",
		Phone:       "555-0100",
	})
	require.NoError(t, err)

	got, err := profiles.GetOwnPatientProfile(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", got.FullName)
	require.NotNil(t, got.DateOfBirth)
	require.Equal(t, dob.Format(time.DateOnly), got.DateOfBirth.Format(time.DateOnly))
	require.Equal(t, "1 Main St", got.Address)
	require.Equal(t, "555-0100", got.Phone)
}

func TestProfileService_UpdateValidation(t *testing.T) {
	st := newTestStore(t)
	accounts := &AccountService{Store: st}
	profiles := &ProfileService{Store: st}
	ctx := context.Background()

	user, err := accounts.Register(ctx, registerInput("alice", domain.RolePatient))
	require.NoError(t, err)

	err = profiles.UpdateOwnPatientProfile(ctx, user.ID, PatientProfileUpdate{})
	verr, ok := AsValidation(err)
	require.True(t, ok)
	require.Contains(t, verr.Fields, "full_name")
	require.Contains(t, verr.Fields, "date_of_birth")
	require.Contains(t, verr.Fields, "address")
	require.Contains(t, verr.Fields, "phone")
}

func TestProfileService_SearchPatients(t *testing.T) {
	st := newTestStore(t)
	accounts := &AccountService{Store: st}
	profiles := &ProfileService{Store: st}
	ctx := context.Background()

	for _, username := range []string{"asmith", "bjones", "csmithers"} {
		_, err := accounts.Register(ctx, registerInput(username, domain.RolePatient))
		require.NoError(t, err)
	}

	t.Run("name fragment, case-insensitive", func(t *testing.T) {
		got, err := profiles.SearchPatients(ctx, "SMITH")
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("empty query lists all", func(t *testing.T) {
		got, err := profiles.SearchPatients(ctx, "  ")
		require.NoError(t, err)
		require.Len(t, got, 3)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := profiles.SearchPatients(ctx, "zzz")
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestProfileService_BackfillDoctorProfiles(t *testing.T) {
	st := newTestStore(t)
	profiles := &ProfileService{Store: st}
	ctx := context.Background()

	// Insert doctor identities directly, bypassing the registration
	// transaction, to simulate rows imported without profiles.
	hash, err := cryptox.HashPassword("Sup3r!secret")
	require.NoError(t, err)

	for _, username := range []string{"drsmith", "drjones"} {
		err := st.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Username:     username,
			Email:        username + "@example.com",
			PasswordHash: hash,
			Role:         domain.RoleDoctor,
		})
		require.NoError(t, err)
	}

	created, err := profiles.BackfillDoctorProfiles(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, created)

	doctors, err := profiles.ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	for _, d := range doctors {
		require.NotEmpty(t, d.FullName, "backfill seeds the username as display name")
	}

	// A second sweep finds nothing to repair.
	created, err = profiles.BackfillDoctorProfiles(ctx)
	require.NoError(t, err)
	require.Zero(t, created)
}
