package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"medscanapi/internal/model"
	"medscanapi/internal/repository"
)

// ReportPostgres is a PostgreSQL implementation of repository.ReportRepository.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

// Create inserts a report row and returns the stored record.
func (r *ReportPostgres) Create(ctx context.Context, rep *model.Report) (*model.Report, error) {
	const q = `
		INSERT INTO reports (id, scan_id, report_number, report_type, report_status,
			report_title, clinical_indication, technique, findings, impression, recommendations,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
		RETURNING id, scan_id, report_number, report_type, report_status,
			report_title, clinical_indication, technique, findings, impression, recommendations,
			published_at, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		rep.ID,
		rep.ScanID,
		rep.ReportNumber,
		rep.ReportType,
		rep.ReportStatus,
		rep.ReportTitle,
		rep.ClinicalIndication,
		rep.Technique,
		rep.Findings,
		rep.Impression,
		rep.Recommendations,
	)
	var out model.Report
	if err := row.Scan(
		&out.ID,
		&out.ScanID,
		&out.ReportNumber,
		&out.ReportType,
		&out.ReportStatus,
		&out.ReportTitle,
		&out.ClinicalIndication,
		&out.Technique,
		&out.Findings,
		&out.Impression,
		&out.Recommendations,
		&out.PublishedAt,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// LatestDetailByScan fetches the newest report for a scan with patient identity
// and the current radiologist's credentials for the signature block.
func (r *ReportPostgres) LatestDetailByScan(ctx context.Context, scanID, radiologistUserID string) (*model.ReportDetail, error) {
	const q = `
		SELECT r.id, r.scan_id, r.report_number, r.report_type, r.report_status,
		       r.report_title, r.clinical_indication, r.technique, r.findings,
		       r.impression, r.recommendations, r.published_at, r.created_at, r.updated_at,
		       s.scan_number, s.examination_type, s.body_region, s.scan_date,
		       u.first_name || ' ' || u.last_name AS patient_name,
		       rad_u.first_name || ' ' || rad_u.last_name AS radiologist_name,
		       rad_p.license_number, rad_p.specialization
		FROM reports r
		JOIN scans s ON r.scan_id = s.id
		JOIN patient_profiles pp ON s.patient_id = pp.id
		JOIN users u ON pp.user_id = u.id
		LEFT JOIN radiologist_profiles rad_p ON rad_p.user_id = $2
		LEFT JOIN users rad_u ON rad_p.user_id = rad_u.id
		WHERE r.scan_id = $1
		ORDER BY r.created_at DESC
		LIMIT 1
	`
	row := r.db.QueryRowContext(ctx, q, scanID, radiologistUserID)
	var d model.ReportDetail
	if err := row.Scan(
		&d.ID,
		&d.ScanID,
		&d.ReportNumber,
		&d.ReportType,
		&d.ReportStatus,
		&d.ReportTitle,
		&d.ClinicalIndication,
		&d.Technique,
		&d.Findings,
		&d.Impression,
		&d.Recommendations,
		&d.PublishedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.ScanNumber,
		&d.ExaminationType,
		&d.BodyRegion,
		&d.ScanDate,
		&d.PatientName,
		&d.RadiologistName,
		&d.LicenseNumber,
		&d.Specialization,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Update applies the given columns and appends one edit history entry carrying
// the changed fields. Columns are sorted so the generated SQL is stable.
func (r *ReportPostgres) Update(ctx context.Context, id string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	set := make([]string, 0, len(cols)+2)
	args := make([]any, 0, len(cols)+2)
	args = append(args, id)
	for i, col := range cols {
		set = append(set, fmt.Sprintf("%s = $%d", col, i+2))
		args = append(args, fields[col])
	}

	entry, err := json.Marshal(map[string]any{
		"at":     time.Now().UTC().Format(time.RFC3339),
		"fields": cols,
	})
	if err != nil {
		return fmt.Errorf("marshal edit history entry: %w", err)
	}
	args = append(args, entry)

	q := fmt.Sprintf(
		"UPDATE reports SET %s, edit_history = edit_history || $%d::jsonb, updated_at = now() WHERE id = $1",
		strings.Join(set, ", "), len(cols)+2,
	)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FindStatus returns the report's current status.
func (r *ReportPostgres) FindStatus(ctx context.Context, id string) (string, error) {
	const q = `SELECT report_status FROM reports WHERE id = $1`
	var status string
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&status); err != nil {
		return "", err
	}
	return status, nil
}

// Publish moves a report to published.
func (r *ReportPostgres) Publish(ctx context.Context, id string) error {
	const q = `
		UPDATE reports
		SET report_status = 'published', published_at = now(), updated_at = now()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Unpublish moves a published report back to draft.
func (r *ReportPostgres) Unpublish(ctx context.Context, id string) error {
	const q = `
		UPDATE reports
		SET report_status = 'draft', published_at = NULL, updated_at = now()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FindPatientUserID returns the patient account a report belongs to.
func (r *ReportPostgres) FindPatientUserID(ctx context.Context, reportID string) (string, error) {
	const q = `
		SELECT pp.user_id
		FROM reports r
		JOIN scans s ON r.scan_id = s.id
		JOIN patient_profiles pp ON s.patient_id = pp.id
		WHERE r.id = $1
	`
	var userID string
	if err := r.db.QueryRowContext(ctx, q, reportID).Scan(&userID); err != nil {
		return "", err
	}
	return userID, nil
}

// ListPublishedByPatient returns published reports, newest publication first.
func (r *ReportPostgres) ListPublishedByPatient(ctx context.Context, patientProfileID string) ([]model.PatientReport, error) {
	const q = `
		SELECT r.id, r.report_number, r.report_title, r.report_status,
		       r.published_at, r.created_at,
		       s.scan_number, s.examination_type, s.body_region, s.scan_date
		FROM reports r
		JOIN scans s ON r.scan_id = s.id
		WHERE s.patient_id = $1
		  AND r.report_status = 'published'
		ORDER BY r.published_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q, patientProfileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]model.PatientReport, 0)
	for rows.Next() {
		var p model.PatientReport
		if err := rows.Scan(
			&p.ID,
			&p.ReportNumber,
			&p.ReportTitle,
			&p.ReportStatus,
			&p.PublishedAt,
			&p.CreatedAt,
			&p.ScanNumber,
			&p.ExaminationType,
			&p.BodyRegion,
			&p.ScanDate,
		); err != nil {
			return nil, err
		}
		reports = append(reports, p)
	}
	return reports, rows.Err()
}

// FindPublishedDetail fetches a published report's detail view with an
// ownership predicate. Drafts are invisible here.
func (r *ReportPostgres) FindPublishedDetail(ctx context.Context, reportID, patientProfileID string) (*model.ReportDetail, error) {
	const q = `
		SELECT r.id, r.scan_id, r.report_number, r.report_type, r.report_status,
		       r.report_title, r.clinical_indication, r.technique, r.findings,
		       r.impression, r.recommendations, r.published_at, r.created_at, r.updated_at,
		       s.scan_number, s.examination_type, s.body_region, s.scan_date,
		       u.first_name || ' ' || u.last_name AS patient_name
		FROM reports r
		JOIN scans s ON r.scan_id = s.id
		JOIN patient_profiles pp ON s.patient_id = pp.id
		JOIN users u ON pp.user_id = u.id
		WHERE r.id = $1
		  AND s.patient_id = $2
		  AND r.report_status = 'published'
	`
	row := r.db.QueryRowContext(ctx, q, reportID, patientProfileID)
	var d model.ReportDetail
	if err := row.Scan(
		&d.ID,
		&d.ScanID,
		&d.ReportNumber,
		&d.ReportType,
		&d.ReportStatus,
		&d.ReportTitle,
		&d.ClinicalIndication,
		&d.Technique,
		&d.Findings,
		&d.Impression,
		&d.Recommendations,
		&d.PublishedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.ScanNumber,
		&d.ExaminationType,
		&d.BodyRegion,
		&d.ScanDate,
		&d.PatientName,
	); err != nil {
		return nil, err
	}
	return &d, nil
}
