package repository

import (
	"context"
	"time"

	"medscanapi/internal/model"
)

// UserRepository defines data access for accounts and their role profiles.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// FindByEmail returns a user by email, including the password hash.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID returns a user by its ID.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// UpdateLastLogin stamps the user's last_login column.
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error

	// FindPatientProfile returns the patient profile owned by the given user,
	// or sql.ErrNoRows when the user has none.
	FindPatientProfile(ctx context.Context, userID string) (*model.PatientProfile, error)

	// FindRadiologistProfile returns the radiologist profile owned by the given user.
	FindRadiologistProfile(ctx context.Context, userID string) (*model.RadiologistProfile, error)
}
