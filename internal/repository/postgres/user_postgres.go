package postgres

import (
	"context"
	"database/sql"
	"time"

	"medscanapi/internal/model"
	"medscanapi/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

const userColumns = `id, email, password_hash, role, status, first_name, last_name, phone, date_of_birth, created_at, last_login`

func scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.FirstName,
		&u.LastName,
		&u.Phone,
		&u.DateOfBirth,
		&u.CreatedAt,
		&u.LastLogin,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail fetches a user by email.
func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

// FindByID fetches a user by ID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// UpdateLastLogin stamps last_login after a successful authentication.
func (r *UserPostgres) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	const q = `UPDATE users SET last_login = $2, updated_at = now() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id, at)
	return err
}

// FindPatientProfile fetches the patient profile owned by a user.
func (r *UserPostgres) FindPatientProfile(ctx context.Context, userID string) (*model.PatientProfile, error) {
	const q = `
		SELECT id, user_id, patient_id, age_years, weight_kg, height_cm, gender,
		       address, emergency_contact_name, emergency_contact_phone,
		       blood_type, array_to_json(allergies), medical_history, created_at
		FROM patient_profiles
		WHERE user_id = $1
	`
	row := r.db.QueryRowContext(ctx, q, userID)
	var p model.PatientProfile
	var allergies model.TextArray
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.PatientID,
		&p.AgeYears,
		&p.WeightKg,
		&p.HeightCm,
		&p.Gender,
		&p.Address,
		&p.EmergencyContactName,
		&p.EmergencyContactPhone,
		&p.BloodType,
		&allergies,
		&p.MedicalHistory,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.Allergies = allergies.OrEmpty()
	return &p, nil
}

// FindRadiologistProfile fetches the radiologist profile owned by a user.
func (r *UserPostgres) FindRadiologistProfile(ctx context.Context, userID string) (*model.RadiologistProfile, error) {
	const q = `
		SELECT id, user_id, license_number, specialization, years_of_experience, institution, created_at
		FROM radiologist_profiles
		WHERE user_id = $1
	`
	row := r.db.QueryRowContext(ctx, q, userID)
	var p model.RadiologistProfile
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.LicenseNumber,
		&p.Specialization,
		&p.YearsOfExperience,
		&p.Institution,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
