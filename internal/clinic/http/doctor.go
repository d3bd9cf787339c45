package http

import (
	"net/http"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/internal/clinic/service"
	"github.com/meadowhealth/clinic/pkg/httpx"
)

// DoctorHandler serves everything behind the doctor role guard. Doctors may
// view any patient's clinical data, but appointment status changes and
// record edits are restricted to the authoring doctor by the service layer.
type DoctorHandler struct {
	Profiles     *service.ProfileService
	Appointments *service.AppointmentService
	Records      *service.RecordsService
}

func badForm(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
		Error:   "invalid_request",
		Message: "Invalid form data",
	})
}

// HandleSearchPatients godoc
//
//	@Summary	Search patients by name
//	@Tags		Doctor
//	@Produce	json
//	@Param		q	query	string	false	"Name fragment; empty lists all"
//	@Success	200	{array}	PatientProfileView
//	@Router		/doctor/patients [get].
func (h *DoctorHandler) HandleSearchPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.Profiles.SearchPatients(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapViews(patients, toPatientProfileView))
}

// HandleGetPatient godoc
//
//	@Summary	View a patient's profile
//	@Tags		Doctor
//	@Produce	json
//	@Param		id	path		string	true	"Patient profile id"
//	@Success	200	{object}	PatientProfileView
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Router		/doctor/patients/{id} [get].
func (h *DoctorHandler) HandleGetPatient(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Profiles.GetPatientProfile(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPatientProfileView(profile))
}

// HandlePatientHistory godoc
//
//	@Summary	View a patient's medical records
//	@Tags		Doctor
//	@Produce	json
//	@Param		id	path	string	true	"Patient profile id"
//	@Success	200	{array}	MedicalRecordView
//	@Router		/doctor/patients/{id}/medical-history [get].
func (h *DoctorHandler) HandlePatientHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.Records.MedicalHistory(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapViews(records, toMedicalRecordView))
}

// HandlePatientLabResults godoc
//
//	@Summary	View a patient's lab results
//	@Tags		Doctor
//	@Produce	json
//	@Param		id	path	string	true	"Patient profile id"
//	@Success	200	{array}	LabResultView
//	@Router		/doctor/patients/{id}/lab-results [get].
func (h *DoctorHandler) HandlePatientLabResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.Records.LabResults(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapViews(results, toLabResultView))
}

// HandlePatientPrescriptions godoc
//
//	@Summary	View a patient's prescriptions
//	@Tags		Doctor
//	@Produce	json
//	@Param		id	path	string	true	"Patient profile id"
//	@Success	200	{array}	PrescriptionView
//	@Router		/doctor/patients/{id}/prescriptions [get].
func (h *DoctorHandler) HandlePatientPrescriptions(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.Records.Prescriptions(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapViews(prescriptions, toPrescriptionView))
}

// HandleListAppointments godoc
//
//	@Summary	List own appointments
//	@Tags		Doctor
//	@Produce	json
//	@Success	200	{array}	AppointmentView
//	@Router		/doctor/appointments [get].
func (h *DoctorHandler) HandleListAppointments(w http.ResponseWriter, r *http.Request) {
	appts, err := h.Appointments.ListForDoctor(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapViews(appts, toAppointmentView))
}

// HandleUpdateAppointmentStatus godoc
//
//	@Summary	Confirm, complete or cancel an appointment
//	@Tags		Doctor
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		id		path		string	true	"Appointment id"
//	@Param		status	formData	string	true	"confirmed, completed or cancelled"
//	@Success	200	{object}	httpx.NoticeResponse
//	@Failure	403	{object}	httpx.ErrorResponse
//	@Router		/doctor/appointments/{id}/status [post].
func (h *DoctorHandler) HandleUpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badForm(w)
		return
	}

	status, ok := domain.ParseAppointmentStatus(r.PostFormValue("status"))
	if !ok {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:  "validation_error",
			Fields: map[string]string{"status": "Status must be confirmed, completed or cancelled."},
		})
		return
	}

	err := h.Appointments.UpdateStatus(r.Context(), httpx.UserIDFromContext(r.Context()), r.PathValue("id"), status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.NoticeResponse{Notice: "Appointment updated."})
}

// HandleAddMedicalRecord godoc
//
//	@Summary	Add a medical record for a patient
//	@Tags		Doctor
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		id			path		string	true	"Patient profile id"
//	@Param		diagnosis	formData	string	true	"Diagnosis"
//	@Param		treatment	formData	string	true	"Treatment"
//	@Param		date		formData	string	true	"Date (YYYY-MM-DD)"
//	@Success	201	{object}	MedicalRecordView
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Router		/doctor/patients/{id}/medical-records [post].
func (h *DoctorHandler) HandleAddMedicalRecord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badForm(w)
		return
	}

	record, err := h.Records.AddMedicalRecord(r.Context(), httpx.UserIDFromContext(r.Context()), r.PathValue("id"), service.MedicalRecordInput{
		Diagnosis:  r.PostFormValue("diagnosis"),
		Treatment:  r.PostFormValue("treatment"),
		RecordedAt: parseFormDate(r.PostFormValue("date")),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMedicalRecordView(record))
}

// HandleEditMedicalRecord godoc
//
//	@Summary	Edit a medical record
//	@Description	Only the authoring doctor may edit a record.
//	@Tags		Doctor
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		id			path		string	true	"Medical record id"
//	@Param		diagnosis	formData	string	true	"Diagnosis"
//	@Param		treatment	formData	string	true	"Treatment"
//	@Param		date		formData	string	true	"Date (YYYY-MM-DD)"
//	@Success	200	{object}	httpx.NoticeResponse
//	@Failure	403	{object}	httpx.ErrorResponse
//	@Router		/doctor/medical-records/{id} [post].
func (h *DoctorHandler) HandleEditMedicalRecord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badForm(w)
		return
	}

	err := h.Records.EditMedicalRecord(r.Context(), httpx.UserIDFromContext(r.Context()), r.PathValue("id"), service.MedicalRecordInput{
		Diagnosis:  r.PostFormValue("diagnosis"),
		Treatment:  r.PostFormValue("treatment"),
		RecordedAt: parseFormDate(r.PostFormValue("date")),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.NoticeResponse{Notice: "Medical record updated."})
}

// HandleAddLabResult godoc
//
//	@Summary	Add a lab result for a patient
//	@Tags		Doctor
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		id			path		string	true	"Patient profile id"
//	@Param		test_name	formData	string	true	"Test name"
//	@Param		result		formData	string	true	"Result"
//	@Param		date		formData	string	true	"Date (YYYY-MM-DD)"
//	@Success	201	{object}	LabResultView
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Router		/doctor/patients/{id}/lab-results [post].
func (h *DoctorHandler) HandleAddLabResult(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badForm(w)
		return
	}

	result, err := h.Records.AddLabResult(r.Context(), httpx.UserIDFromContext(r.Context()), r.PathValue("id"), service.LabResultInput{
		TestName:   r.PostFormValue("test_name"),
		Result:     r.PostFormValue("result"),
		RecordedAt: parseFormDate(r.PostFormValue("date")),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toLabResultView(result))
}

// HandleAddPrescription godoc
//
//	@Summary	Add a prescription for a patient
//	@Tags		Doctor
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		id					path		string	true	"Patient profile id"
//	@Param		medication			formData	string	true	"Medication"
//	@Param		dosage				formData	string	true	"Dosage"
//	@Param		instructions		formData	string	true	"Instructions"
//	@Param		medical_record_id	formData	string	false	"Optional linked medical record id"
//	@Param		date				formData	string	true	"Date (YYYY-MM-DD)"
//	@Success	201	{object}	PrescriptionView
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Router		/doctor/patients/{id}/prescriptions [post].
func (h *DoctorHandler) HandleAddPrescription(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badForm(w)
		return
	}

	prescription, err := h.Records.AddPrescription(r.Context(), httpx.UserIDFromContext(r.Context()), r.PathValue("id"), service.PrescriptionInput{
		Medication:      r.PostFormValue("medication"),
		Dosage:          r.PostFormValue("dosage"),
		Instructions:    r.PostFormValue("instructions"),
		MedicalRecordID: r.PostFormValue("medical_record_id"),
		RecordedAt:      parseFormDate(r.PostFormValue("date")),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPrescriptionView(prescription))
}
