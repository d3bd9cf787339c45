package http

import (
	"net/http"

	"github.com/meadowhealth/clinic/internal/clinic/service"
	"github.com/meadowhealth/clinic/pkg/httpx"
)

// PatientHandler serves everything behind the patient role guard. Every
// lookup is keyed by the session's user id; patient ids from the request are
// never trusted.
type PatientHandler struct {
	Profiles     *service.ProfileService
	Appointments *service.AppointmentService
	Records      *service.RecordsService
}

// HandleGetProfile godoc
//
//	@Summary	Get own patient profile
//	@Tags		Patient
//	@Produce	json
//	@Success	200	{object}	PatientProfileView
//	@Router		/patient/profile [get].
func (h *PatientHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Profiles.GetOwnPatientProfile(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPatientProfileView(profile))
}

// HandleUpdateProfile godoc
//
//	@Summary	Update own patient profile
//	@Tags		Patient
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		full_name		formData	string	true	"Full name"
//	@Param		date_of_birth	formData	string	true	"Date of birth (YYYY-MM-DD)"
//	@Param		address			formData	string	true	"Address"
//	@Param		phone			formData	string	true	"Phone"
//	@Success	200	{object}	PatientProfileView
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Router		/patient/profile [post].
func (h *PatientHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid form data",
		})
		return
	}

	userID := httpx.UserIDFromContext(r.Context())
	err := h.Profiles.UpdateOwnPatientProfile(r.Context(), userID, service.PatientProfileUpdate{
		FullName:    r.PostFormValue("full_name"),
		DateOfBirth: parseFormDate(r.PostFormValue("date_of_birth")),
		Address:     r.PostFormValue("address"),
		Phone:       r.PostFormValue("phone"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	profile, err := h.Profiles.GetOwnPatientProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPatientProfileView(profile))
}

// HandleListDoctors godoc
//
//	@Summary	List doctors for the booking form
//	@Tags		Patient
//	@Produce	json
//	@Success	200	{array}	DoctorProfileView
//	@Router		/patient/doctors [get].
func (h *PatientHandler) HandleListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.Profiles.ListDoctors(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapViews(doctors, toDoctorProfileView))
}

// HandleListAppointments godoc
//
//	@Summary	List own appointments
//	@Tags		Patient
//	@Produce	json
//	@Success	200	{array}	AppointmentView
//	@Router		/patient/appointments [get].
func (h *PatientHandler) HandleListAppointments(w http.ResponseWriter, r *http.Request) {
	appts, err := h.Appointments.ListForPatient(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapViews(appts, toAppointmentView))
}

// HandleBookAppointment godoc
//
//	@Summary	Book an appointment
//	@Tags		Patient
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		doctor_id			formData	string	true	"Doctor profile id"
//	@Param		appointment_time	formData	string	true	"Time (YYYY-MM-DDTHH:MM)"
//	@Param		reason				formData	string	true	"Reason for visit"
//	@Success	201	{object}	AppointmentView
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Router		/patient/appointments [post].
func (h *PatientHandler) HandleBookAppointment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid form data",
		})
		return
	}

	appt, err := h.Appointments.Book(r.Context(), httpx.UserIDFromContext(r.Context()), service.BookAppointmentInput{
		DoctorID:        r.PostFormValue("doctor_id"),
		AppointmentTime: parseFormDateTime(r.PostFormValue("appointment_time")),
		Reason:          r.PostFormValue("reason"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAppointmentView(appt))
}

// HandleMedicalHistory godoc
//
//	@Summary	List own medical records
//	@Tags		Patient
//	@Produce	json
//	@Success	200	{array}	MedicalRecordView
//	@Router		/patient/medical-history [get].
func (h *PatientHandler) HandleMedicalHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.Records.OwnMedicalHistory(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapViews(records, toMedicalRecordView))
}

// HandleLabResults godoc
//
//	@Summary	List own lab results
//	@Tags		Patient
//	@Produce	json
//	@Success	200	{array}	LabResultView
//	@Router		/patient/lab-results [get].
func (h *PatientHandler) HandleLabResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.Records.OwnLabResults(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapViews(results, toLabResultView))
}

// HandlePrescriptions godoc
//
//	@Summary	List own prescriptions
//	@Tags		Patient
//	@Produce	json
//	@Success	200	{array}	PrescriptionView
//	@Router		/patient/prescriptions [get].
func (h *PatientHandler) HandlePrescriptions(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.Records.OwnPrescriptions(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapViews(prescriptions, toPrescriptionView))
}
