package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func recordInput() MedicalRecordInput {
	return MedicalRecordInput{
		Diagnosis:  "Seasonal allergies",
		Treatment:  "Antihistamines",
		RecordedAt: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRecordsService_AddMedicalRecord(t *testing.T) {
	f := newClinicFixture(t)
	ctx := context.Background()

	patient, err := f.store.Profiles.GetOwnPatientProfile(ctx, f.patientUser)
	require.NoError(t, err)

	record, err := f.store.Records.AddMedicalRecord(ctx, f.doctorUser, patient.ID, recordInput())
	require.NoError(t, err)
	require.Equal(t, f.doctorID, record.DoctorID)
	require.Equal(t, patient.ID, record.PatientID)

	// The patient sees it through their own view.
	history, err := f.store.Records.OwnMedicalHistory(ctx, f.patientUser)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "Seasonal allergies", history[0].Diagnosis)
}

func TestRecordsService_EscapesMarkup(t *testing.T) {
	f := newClinicFixture(t)
	ctx := context.Background()

	patient, err := f.store.Profiles.GetOwnPatientProfile(ctx, f.patientUser)
	require.NoError(t, err)

	in := recordInput()
	in.Diagnosis = `<script>alert("x")</script>`
	in.Treatment = `rest & fluids`

	record, err := f.store.Records.AddMedicalRecord(ctx, f.doctorUser, patient.ID, in)
	require.NoError(t, err)
	require.Equal(t, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;", record.Diagnosis)
	require.Equal(t, "rest &amp; fluids", record.Treatment)

	// The escaped form is what got persisted.
	history, err := f.store.Records.MedicalHistory(ctx, patient.ID)
	require.NoError(t, err)
	require.Equal(t, record.Diagnosis, history[0].Diagnosis)
}

func TestRecordsService_EditMedicalRecordOwnership(t *testing.T) {
	f := newClinicFixture(t)
	ctx := context.Background()

	patient, err := f.store.Profiles.GetOwnPatientProfile(ctx, f.patientUser)
	require.NoError(t, err)

	record, err := f.store.Records.AddMedicalRecord(ctx, f.doctorUser, patient.ID, recordInput())
	require.NoError(t, err)

	edit := recordInput()
	edit.Diagnosis = "Updated diagnosis"

	t.Run("author may edit", func(t *testing.T) {
		require.NoError(t, f.store.Records.EditMedicalRecord(ctx, f.doctorUser, record.ID, edit))

		history, err := f.store.Records.MedicalHistory(ctx, patient.ID)
		require.NoError(t, err)
		require.Equal(t, "Updated diagnosis", history[0].Diagnosis)
	})

	t.Run("another doctor may not", func(t *testing.T) {
		err := f.store.Records.EditMedicalRecord(ctx, f.doctor2User, record.ID, edit)
		require.ErrorIs(t, err, ErrNotOwner)
	})
}

func TestRecordsService_LabResults(t *testing.T) {
	f := newClinicFixture(t)
	ctx := context.Background()

	patient, err := f.store.Profiles.GetOwnPatientProfile(ctx, f.patientUser)
	require.NoError(t, err)

	_, err = f.store.Records.AddLabResult(ctx, f.doctorUser, patient.ID, LabResultInput{
		TestName:   "CBC",
		Result:     "Within normal limits",
		RecordedAt: time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	own, err := f.store.Records.OwnLabResults(ctx, f.patientUser)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, "CBC", own[0].TestName)

	t.Run("validation", func(t *testing.T) {
		_, err := f.store.Records.AddLabResult(ctx, f.doctorUser, patient.ID, LabResultInput{})
		verr, ok := AsValidation(err)
		require.True(t, ok)
		require.Contains(t, verr.Fields, "test_name")
		require.Contains(t, verr.Fields, "result")
		require.Contains(t, verr.Fields, "date")
	})
}

func TestRecordsService_Prescriptions(t *testing.T) {
	f := newClinicFixture(t)
	ctx := context.Background()

	patient, err := f.store.Profiles.GetOwnPatientProfile(ctx, f.patientUser)
	require.NoError(t, err)

	prescriptionInput := func() PrescriptionInput {
		return PrescriptionInput{
			Medication:   "Loratadine",
			Dosage:       "10mg daily",
			Instructions: "Take with water",
			RecordedAt:   time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("unlinked prescription", func(t *testing.T) {
		p, err := f.store.Records.AddPrescription(ctx, f.doctorUser, patient.ID, prescriptionInput())
		require.NoError(t, err)
		require.Empty(t, p.MedicalRecordID)

		own, err := f.store.Records.OwnPrescriptions(ctx, f.patientUser)
		require.NoError(t, err)
		require.Len(t, own, 1)
	})

	t.Run("linked to a medical record", func(t *testing.T) {
		record, err := f.store.Records.AddMedicalRecord(ctx, f.doctorUser, patient.ID, recordInput())
		require.NoError(t, err)

		in := prescriptionInput()
		in.MedicalRecordID = record.ID
		p, err := f.store.Records.AddPrescription(ctx, f.doctorUser, patient.ID, in)
		require.NoError(t, err)
		require.Equal(t, record.ID, p.MedicalRecordID)
	})

	t.Run("link to unknown record rejected", func(t *testing.T) {
		in := prescriptionInput()
		in.MedicalRecordID = "no-such-record"
		_, err := f.store.Records.AddPrescription(ctx, f.doctorUser, patient.ID, in)
		verr, ok := AsValidation(err)
		require.True(t, ok)
		require.Contains(t, verr.Fields, "medical_record_id")
	})
}
