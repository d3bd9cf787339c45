package domain

import "time"

// PatientProfile holds patient demographics, linked 1-1 to a User.
// Created at registration with the username as a placeholder full name.
type PatientProfile struct {
	ID          string
	UserID      string
	FullName    string
	DateOfBirth *time.Time
	Address     string
	Phone       string
}

// DoctorProfile is the doctor-side counterpart of PatientProfile.
type DoctorProfile struct {
	ID        string
	UserID    string
	FullName  string
	Specialty string
	Phone     string
}
