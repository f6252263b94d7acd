package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, dbMock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "password_hash", "role", "status", "first_name",
		"last_name", "phone", "date_of_birth", "created_at", "last_login",
	})
}

func TestUserFindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, dbMock := newMock(t)
		repo := NewUserPostgres(db)

		dbMock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("pat@example.org").
			WillReturnRows(userRows().AddRow(
				"user-1", "pat@example.org", "hash", "patient", "active",
				"Pat", "Doe", nil, nil, time.Now(), nil,
			))

		user, err := repo.FindByEmail(ctx, "pat@example.org")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, "patient", user.Role)
		assert.Nil(t, user.LastLogin)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, dbMock := newMock(t)
		repo := NewUserPostgres(db)

		dbMock.ExpectQuery("SELECT (.+) FROM users WHERE email").
			WithArgs("nobody@example.org").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByEmail(ctx, "nobody@example.org")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestUserUpdateLastLogin(t *testing.T) {
	db, dbMock := newMock(t)
	repo := NewUserPostgres(db)

	at := time.Now().UTC()
	dbMock.ExpectExec("UPDATE users SET last_login").
		WithArgs("user-1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateLastLogin(context.Background(), "user-1", at))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUserFindPatientProfile(t *testing.T) {
	db, dbMock := newMock(t)
	repo := NewUserPostgres(db)

	dbMock.ExpectQuery("SELECT (.+) FROM patient_profiles").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "patient_id", "age_years", "weight_kg", "height_cm",
			"gender", "address", "emergency_contact_name", "emergency_contact_phone",
			"blood_type", "allergies", "medical_history", "created_at",
		}).AddRow(
			"profile-1", "user-1", "PAT-001", 42, nil, nil,
			"female", nil, nil, nil,
			"O+", []byte(`["penicillin","latex"]`), nil, time.Now(),
		))

	profile, err := repo.FindPatientProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "PAT-001", profile.PatientID)
	assert.Equal(t, []string{"penicillin", "latex"}, profile.Allergies)
	require.NotNil(t, profile.AgeYears)
	assert.Equal(t, 42, *profile.AgeYears)
}

func TestUserFindRadiologistProfile(t *testing.T) {
	db, dbMock := newMock(t)
	repo := NewUserPostgres(db)

	dbMock.ExpectQuery("SELECT (.+) FROM radiologist_profiles").
		WithArgs("rad-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "license_number", "specialization",
			"years_of_experience", "institution", "created_at",
		}).AddRow("radprof-1", "rad-1", "LIC-42", "Thoracic", 9, nil, time.Now()))

	profile, err := repo.FindRadiologistProfile(context.Background(), "rad-1")
	require.NoError(t, err)
	assert.Equal(t, "LIC-42", profile.LicenseNumber)
	require.NotNil(t, profile.Specialization)
	assert.Equal(t, "Thoracic", *profile.Specialization)
}
