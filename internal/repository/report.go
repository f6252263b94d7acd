package repository

import (
	"context"

	"medscanapi/internal/model"
)

// ReportRepository defines data access for diagnostic reports.
type ReportRepository interface {
	// Create inserts a report row and returns the stored record.
	Create(ctx context.Context, r *model.Report) (*model.Report, error)

	// LatestDetailByScan returns the newest report for a scan joined with
	// patient identity and the signing radiologist's credentials, or
	// sql.ErrNoRows when the scan has no report yet.
	LatestDetailByScan(ctx context.Context, scanID, radiologistUserID string) (*model.ReportDetail, error)

	// Update applies the given column -> value map and appends an entry to
	// the report's edit history.
	Update(ctx context.Context, id string, fields map[string]string) error

	// FindStatus returns the report's current status.
	FindStatus(ctx context.Context, id string) (string, error)

	// Publish moves a report to published and stamps published_at.
	Publish(ctx context.Context, id string) error

	// Unpublish moves a published report back to draft and clears published_at.
	Unpublish(ctx context.Context, id string) error

	// FindPatientUserID returns the user id of the patient the report's scan
	// belongs to.
	FindPatientUserID(ctx context.Context, reportID string) (string, error)

	// ListPublishedByPatient returns published reports of a patient profile,
	// newest publication first.
	ListPublishedByPatient(ctx context.Context, patientProfileID string) ([]model.PatientReport, error)

	// FindPublishedDetail returns a published report's detail view only when
	// its scan belongs to the given patient profile.
	FindPublishedDetail(ctx context.Context, reportID, patientProfileID string) (*model.ReportDetail, error)
}
