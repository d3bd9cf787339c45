package http

import (
	"log/slog"
	"net/http"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/internal/clinic/service"
	"github.com/meadowhealth/clinic/internal/clinic/session"
	"github.com/meadowhealth/clinic/internal/clinic/store/drivers/sqlite"
	"github.com/meadowhealth/clinic/pkg/httpx"
	"github.com/meadowhealth/clinic/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/meadowhealth/clinic/api/clinic" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	sessions *session.Manager
	logger   *slog.Logger

	store              *sqlite.Store
	AccountService     *service.AccountService
	ProfileService     *service.ProfileService
	AppointmentService *service.AppointmentService
	RecordsService     *service.RecordsService
	LoginLimiter       *service.LoginLimiter
}

func NewRouter(sessions *session.Manager, st *sqlite.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:      http.NewServeMux(),
		sessions: sessions,
		store:    st,
		logger:   logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPatient()
	r.registerDoctor()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Clinic Management API
//	@version		0.1.0
//	@description	Session-based clinic management service: patient and doctor accounts,
//	@description	appointment booking, medical records, lab results and prescriptions.
//
//	@contact.name	Meadow Health Team
//	@contact.url	https://github.com/meadowhealth/clinic
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Accounts: r.AccountService,
		Sessions: r.sessions,
		Limiter:  r.LoginLimiter,
	}

	// Credential endpoints get the strict per-IP limit. The login lockout
	// counter inside the handler is a separate, slower-burning mechanism.
	r.Mux.Handle("POST /register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// Password change requires a session but not a particular role.
	r.Mux.Handle("POST /change-password",
		httpx.Chain(http.HandlerFunc(h.HandleChangePassword),
			RequireSession(r.sessions),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	dash := &DashboardHandler{Profiles: r.ProfileService}
	r.Mux.Handle("GET /dashboard",
		httpx.Chain(http.HandlerFunc(dash.HandleDashboard),
			RequireSession(r.sessions),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPatient() {
	h := &PatientHandler{
		Profiles:     r.ProfileService,
		Appointments: r.AppointmentService,
		Records:      r.RecordsService,
	}

	guard := RequireRole(r.sessions, domain.RolePatient)

	reads := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler, guard, httpx.RateLimitByUser(httpx.LenientLimit))
	}
	writes := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler, guard, httpx.RateLimitByUser(httpx.ModerateLimit))
	}

	r.Mux.Handle("GET /patient/profile", reads(h.HandleGetProfile))
	r.Mux.Handle("POST /patient/profile", writes(h.HandleUpdateProfile))
	r.Mux.Handle("GET /patient/doctors", reads(h.HandleListDoctors))
	r.Mux.Handle("GET /patient/appointments", reads(h.HandleListAppointments))
	r.Mux.Handle("POST /patient/appointments", writes(h.HandleBookAppointment))
	r.Mux.Handle("GET /patient/medical-history", reads(h.HandleMedicalHistory))
	r.Mux.Handle("GET /patient/lab-results", reads(h.HandleLabResults))
	r.Mux.Handle("GET /patient/prescriptions", reads(h.HandlePrescriptions))
}

func (r *Router) registerDoctor() {
	h := &DoctorHandler{
		Profiles:     r.ProfileService,
		Appointments: r.AppointmentService,
		Records:      r.RecordsService,
	}

	guard := RequireRole(r.sessions, domain.RoleDoctor)

	reads := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler, guard, httpx.RateLimitByUser(httpx.LenientLimit))
	}
	writes := func(handler http.HandlerFunc) http.Handler {
		return httpx.Chain(handler, guard, httpx.RateLimitByUser(httpx.ModerateLimit))
	}

	r.Mux.Handle("GET /doctor/patients", reads(h.HandleSearchPatients))
	r.Mux.Handle("GET /doctor/patients/{id}", reads(h.HandleGetPatient))
	r.Mux.Handle("GET /doctor/patients/{id}/medical-history", reads(h.HandlePatientHistory))
	r.Mux.Handle("GET /doctor/patients/{id}/lab-results", reads(h.HandlePatientLabResults))
	r.Mux.Handle("GET /doctor/patients/{id}/prescriptions", reads(h.HandlePatientPrescriptions))
	r.Mux.Handle("POST /doctor/patients/{id}/medical-records", writes(h.HandleAddMedicalRecord))
	r.Mux.Handle("POST /doctor/patients/{id}/lab-results", writes(h.HandleAddLabResult))
	r.Mux.Handle("POST /doctor/patients/{id}/prescriptions", writes(h.HandleAddPrescription))
	r.Mux.Handle("POST /doctor/medical-records/{id}", writes(h.HandleEditMedicalRecord))
	r.Mux.Handle("GET /doctor/appointments", reads(h.HandleListAppointments))
	r.Mux.Handle("POST /doctor/appointments/{id}/status", writes(h.HandleUpdateAppointmentStatus))
}

func (r *Router) registerSystem() {
	h := &SystemHandler{Ready: r.store.Ping}

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(http.HandlerFunc(h.HandleLivez),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(http.HandlerFunc(h.HandleReadyz),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
