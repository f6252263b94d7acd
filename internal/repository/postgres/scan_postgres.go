package postgres

import (
	"context"
	"database/sql"

	"medscanapi/internal/model"
	"medscanapi/internal/repository"
)

// ScanPostgres is a PostgreSQL implementation of repository.ScanRepository.
// Text arrays are projected through array_to_json so database/sql can scan
// them without array-literal parsing.
type ScanPostgres struct {
	db *sql.DB
}

// NewScanPostgres creates a new ScanPostgres repository.
func NewScanPostgres(db *sql.DB) *ScanPostgres {
	return &ScanPostgres{db: db}
}

var _ repository.ScanRepository = (*ScanPostgres)(nil)

// ListByPatient returns the scans of a patient profile, newest first.
func (r *ScanPostgres) ListByPatient(ctx context.Context, patientProfileID string) ([]model.Scan, error) {
	const q = `
		SELECT s.id, s.scan_number, s.examination_type, s.body_region,
		       s.urgency_level, s.status, s.scan_date, s.created_at,
		       array_to_json(s.presenting_symptoms), s.clinical_notes
		FROM scans s
		WHERE s.patient_id = $1
		ORDER BY s.scan_date DESC
	`
	rows, err := r.db.QueryContext(ctx, q, patientProfileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scans := make([]model.Scan, 0)
	for rows.Next() {
		var s model.Scan
		if err := rows.Scan(
			&s.ID,
			&s.ScanNumber,
			&s.ExaminationType,
			&s.BodyRegion,
			&s.UrgencyLevel,
			&s.Status,
			&s.ScanDate,
			&s.CreatedAt,
			&s.PresentingSymptoms,
			&s.ClinicalNotes,
		); err != nil {
			return nil, err
		}
		s.PatientProfileID = patientProfileID
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

// FindByID fetches a bare scan row.
func (r *ScanPostgres) FindByID(ctx context.Context, id string) (*model.Scan, error) {
	const q = `
		SELECT id, patient_id, scan_number, examination_type, body_region,
		       urgency_level, status, scan_date, created_at
		FROM scans
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var s model.Scan
	if err := row.Scan(
		&s.ID,
		&s.PatientProfileID,
		&s.ScanNumber,
		&s.ExaminationType,
		&s.BodyRegion,
		&s.UrgencyLevel,
		&s.Status,
		&s.ScanDate,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

const scanDetailQuery = `
	SELECT s.id, s.scan_number, s.examination_type, s.body_region,
	       s.urgency_level, s.status, s.scan_date, s.created_at,
	       array_to_json(s.presenting_symptoms), array_to_json(s.current_medications),
	       array_to_json(s.previous_surgeries), s.clinical_notes,
	       pp.patient_id, pp.age_years, pp.gender, pp.blood_type, array_to_json(pp.allergies),
	       u.first_name || ' ' || u.last_name AS patient_name
	FROM scans s
	JOIN patient_profiles pp ON s.patient_id = pp.id
	JOIN users u ON pp.user_id = u.id
`

func scanDetailRow(row *sql.Row) (*model.ScanDetail, error) {
	var d model.ScanDetail
	var allergies model.TextArray
	if err := row.Scan(
		&d.ID,
		&d.ScanNumber,
		&d.ExaminationType,
		&d.BodyRegion,
		&d.UrgencyLevel,
		&d.Status,
		&d.ScanDate,
		&d.CreatedAt,
		&d.PresentingSymptoms,
		&d.CurrentMedications,
		&d.PreviousSurgeries,
		&d.ClinicalNotes,
		&d.PatientID,
		&d.AgeYears,
		&d.Gender,
		&d.BloodType,
		&allergies,
		&d.PatientName,
	); err != nil {
		return nil, err
	}
	d.Allergies = allergies.OrEmpty()
	return &d, nil
}

// FindDetail fetches the joined detail view of a scan.
func (r *ScanPostgres) FindDetail(ctx context.Context, scanID string) (*model.ScanDetail, error) {
	return scanDetailRow(r.db.QueryRowContext(ctx, scanDetailQuery+` WHERE s.id = $1`, scanID))
}

// FindDetailForPatient fetches the detail view with an ownership predicate.
func (r *ScanPostgres) FindDetailForPatient(ctx context.Context, scanID, patientProfileID string) (*model.ScanDetail, error) {
	return scanDetailRow(r.db.QueryRowContext(ctx,
		scanDetailQuery+` WHERE s.id = $1 AND s.patient_id = $2`, scanID, patientProfileID))
}

const worklistColumns = `
	s.id, s.scan_number, s.examination_type, s.body_region,
	s.urgency_level, s.status, s.scan_date, s.created_at,
	array_to_json(s.presenting_symptoms), array_to_json(s.current_medications),
	array_to_json(s.previous_surgeries),
	pp.patient_id,
	u.first_name || ' ' || u.last_name AS patient_name`

// ListPending returns the radiologist worklist ordered by urgency, then recency.
func (r *ScanPostgres) ListPending(ctx context.Context) ([]model.WorklistScan, error) {
	const q = `
		SELECT` + worklistColumns + `
		FROM scans s
		JOIN patient_profiles pp ON s.patient_id = pp.id
		JOIN users u ON pp.user_id = u.id
		WHERE s.status IN ('pending', 'in_progress', 'ai_analyzed')
		ORDER BY
			CASE s.urgency_level
				WHEN 'emergent' THEN 1
				WHEN 'urgent' THEN 2
				ELSE 3
			END,
			s.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scans := make([]model.WorklistScan, 0)
	for rows.Next() {
		var w model.WorklistScan
		if err := rows.Scan(
			&w.ID,
			&w.ScanNumber,
			&w.ExaminationType,
			&w.BodyRegion,
			&w.UrgencyLevel,
			&w.Status,
			&w.ScanDate,
			&w.CreatedAt,
			&w.PresentingSymptoms,
			&w.CurrentMedications,
			&w.PreviousSurgeries,
			&w.PatientID,
			&w.PatientName,
		); err != nil {
			return nil, err
		}
		scans = append(scans, w)
	}
	return scans, rows.Err()
}

// ListCompleted returns completed scans with their report status, most
// recently reviewed first.
func (r *ScanPostgres) ListCompleted(ctx context.Context) ([]model.WorklistScan, error) {
	const q = `
		SELECT` + worklistColumns + `,
			r.report_status
		FROM scans s
		JOIN patient_profiles pp ON s.patient_id = pp.id
		JOIN users u ON pp.user_id = u.id
		LEFT JOIN reports r ON s.id = r.scan_id
		WHERE s.status = 'completed'
		ORDER BY s.radiologist_review_completed_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scans := make([]model.WorklistScan, 0)
	for rows.Next() {
		var w model.WorklistScan
		if err := rows.Scan(
			&w.ID,
			&w.ScanNumber,
			&w.ExaminationType,
			&w.BodyRegion,
			&w.UrgencyLevel,
			&w.Status,
			&w.ScanDate,
			&w.CreatedAt,
			&w.PresentingSymptoms,
			&w.CurrentMedications,
			&w.PreviousSurgeries,
			&w.PatientID,
			&w.PatientName,
			&w.ReportStatus,
		); err != nil {
			return nil, err
		}
		scans = append(scans, w)
	}
	return scans, rows.Err()
}

// MarkInProgress moves a scan into AI analysis.
func (r *ScanPostgres) MarkInProgress(ctx context.Context, id string) error {
	const q = `
		UPDATE scans
		SET status = 'in_progress', ai_analysis_started_at = now(), updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// MarkAIAnalyzed records a finished analysis.
func (r *ScanPostgres) MarkAIAnalyzed(ctx context.Context, id string) error {
	const q = `
		UPDATE scans
		SET status = 'ai_analyzed', ai_analysis_completed_at = now(), updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// MarkCompleted records a finished radiologist review.
func (r *ScanPostgres) MarkCompleted(ctx context.Context, id string) error {
	const q = `
		UPDATE scans
		SET status = 'completed', radiologist_review_completed_at = now(), updated_at = now()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// RevertToPending puts a scan back in the worklist after a failed analysis.
func (r *ScanPostgres) RevertToPending(ctx context.Context, id string) error {
	const q = `UPDATE scans SET status = 'pending', updated_at = now() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// ListImages returns a scan's images ordered for display.
func (r *ScanPostgres) ListImages(ctx context.Context, scanID string) ([]model.ScanImage, error) {
	const q = `
		SELECT id, scan_id, image_path, image_order, COALESCE(file_size_bytes, 0),
		       COALESCE(image_format, ''), created_at
		FROM scan_images
		WHERE scan_id = $1
		ORDER BY image_order
	`
	rows, err := r.db.QueryContext(ctx, q, scanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]model.ScanImage, 0)
	for rows.Next() {
		var img model.ScanImage
		if err := rows.Scan(
			&img.ID,
			&img.ScanID,
			&img.ImagePath,
			&img.ImageOrder,
			&img.FileSizeBytes,
			&img.ImageFormat,
			&img.CreatedAt,
		); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// FindPrimaryImage returns the first image of a scan.
func (r *ScanPostgres) FindPrimaryImage(ctx context.Context, scanID string) (*model.ScanImage, error) {
	const q = `
		SELECT id, scan_id, image_path, image_order, COALESCE(file_size_bytes, 0),
		       COALESCE(image_format, ''), created_at
		FROM scan_images
		WHERE scan_id = $1
		ORDER BY image_order
		LIMIT 1
	`
	row := r.db.QueryRowContext(ctx, q, scanID)
	var img model.ScanImage
	if err := row.Scan(
		&img.ID,
		&img.ScanID,
		&img.ImagePath,
		&img.ImageOrder,
		&img.FileSizeBytes,
		&img.ImageFormat,
		&img.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &img, nil
}
