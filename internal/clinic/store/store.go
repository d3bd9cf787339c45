package store

import (
	"context"
	"errors"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep concerns tidy and let services take
// only what they need.
type Store interface {
	Users() Users
	PatientProfiles() PatientProfiles
	DoctorProfiles() DoctorProfiles
	Appointments() Appointments
	MedicalRecords() MedicalRecords
	LabResults() LabResults
	Prescriptions() Prescriptions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to do multi-step writes (e.g. user + profile creation).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsernameAndRole is the login lookup. A role mismatch is
	// reported as ErrNotFound, indistinguishable from an unknown username.
	GetUserByUsernameAndRole(ctx context.Context, username string, role domain.Role) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// A username or email collision returns ErrAlreadyExists; the UNIQUE
	// constraints in the schema are the only uniqueness enforcement.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// ListUsersByRole returns all users with the given role, used by the
	// doctor-profile backfill sweep.
	ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type PatientProfiles interface {
	GetByID(ctx context.Context, id string) (domain.PatientProfile, error)
	GetByUserID(ctx context.Context, userID string) (domain.PatientProfile, error)
	Create(ctx context.Context, p domain.PatientProfile) error
	Update(ctx context.Context, p domain.PatientProfile) error

	// SearchByName filters on full_name, case-insensitive substring match.
	// An empty query returns everyone.
	SearchByName(ctx context.Context, query string) ([]domain.PatientProfile, error)
}

type DoctorProfiles interface {
	GetByID(ctx context.Context, id string) (domain.DoctorProfile, error)
	GetByUserID(ctx context.Context, userID string) (domain.DoctorProfile, error)
	Create(ctx context.Context, d domain.DoctorProfile) error
	Update(ctx context.Context, d domain.DoctorProfile) error
	List(ctx context.Context) ([]domain.DoctorProfile, error)
}

type Appointments interface {
	GetByID(ctx context.Context, id string) (domain.Appointment, error)
	Create(ctx context.Context, a domain.Appointment) error
	ListByPatient(ctx context.Context, patientID string) ([]domain.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

type MedicalRecords interface {
	GetByID(ctx context.Context, id string) (domain.MedicalRecord, error)
	Create(ctx context.Context, r domain.MedicalRecord) error
	Update(ctx context.Context, r domain.MedicalRecord) error
	ListByPatient(ctx context.Context, patientID string) ([]domain.MedicalRecord, error)
}

type LabResults interface {
	Create(ctx context.Context, r domain.LabResult) error
	ListByPatient(ctx context.Context, patientID string) ([]domain.LabResult, error)
}

type Prescriptions interface {
	Create(ctx context.Context, p domain.Prescription) error
	ListByPatient(ctx context.Context, patientID string) ([]domain.Prescription, error)
}
