package model

import "time"

// User roles and account statuses stored in the users table.
const (
	RolePatient     = "patient"
	RoleRadiologist = "radiologist"
	RoleAdmin       = "admin"

	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// User is an account row. PasswordHash never leaves the server.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        *string    `json:"phone"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

// FullName joins first and last name the way the SQL views do.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// PatientProfile holds patient demographics and medical context.
type PatientProfile struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	PatientID             string    `json:"patient_id"`
	AgeYears              *int      `json:"age_years"`
	WeightKg              *float64  `json:"weight_kg"`
	HeightCm              *float64  `json:"height_cm"`
	Gender                *string   `json:"gender"`
	Address               *string   `json:"address"`
	EmergencyContactName  *string   `json:"emergency_contact_name"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone"`
	BloodType             *string   `json:"blood_type"`
	Allergies             []string  `json:"allergies"`
	MedicalHistory        *string   `json:"medical_history"`
	CreatedAt             time.Time `json:"created_at"`
}

// RadiologistProfile holds professional credentials.
type RadiologistProfile struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	LicenseNumber     string    `json:"license_number"`
	Specialization    *string   `json:"specialization"`
	YearsOfExperience *int      `json:"years_of_experience"`
	Institution       *string   `json:"institution"`
	CreatedAt         time.Time `json:"created_at"`
}
