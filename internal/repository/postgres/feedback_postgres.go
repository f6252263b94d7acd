package postgres

import (
	"context"
	"database/sql"

	"medscanapi/internal/model"
	"medscanapi/internal/repository"
)

// FeedbackPostgres is a PostgreSQL implementation of repository.FeedbackRepository.
type FeedbackPostgres struct {
	db *sql.DB
}

// NewFeedbackPostgres creates a new FeedbackPostgres repository.
func NewFeedbackPostgres(db *sql.DB) *FeedbackPostgres {
	return &FeedbackPostgres{db: db}
}

var _ repository.FeedbackRepository = (*FeedbackPostgres)(nil)

// Create inserts a feedback row and returns the stored record.
func (r *FeedbackPostgres) Create(ctx context.Context, f *model.RadiologistFeedback) (*model.RadiologistFeedback, error) {
	const q = `
		INSERT INTO radiologist_feedback (id, scan_id, radiologist_id, feedback_type,
			ai_diagnosis, radiologist_diagnosis, clinical_notes, disagreement_reason,
			additional_findings, radiologist_confidence, image_quality_rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, scan_id, radiologist_id, feedback_type, ai_diagnosis,
			radiologist_diagnosis, clinical_notes, disagreement_reason,
			additional_findings, radiologist_confidence, image_quality_rating,
			feedback_timestamp
	`
	row := r.db.QueryRowContext(ctx, q,
		f.ID,
		f.ScanID,
		f.RadiologistProfileID,
		f.FeedbackType,
		f.AIDiagnosis,
		f.RadiologistDiagnosis,
		f.ClinicalNotes,
		f.DisagreementReason,
		f.AdditionalFindings,
		f.RadiologistConfidence,
		f.ImageQualityRating,
	)
	var out model.RadiologistFeedback
	if err := row.Scan(
		&out.ID,
		&out.ScanID,
		&out.RadiologistProfileID,
		&out.FeedbackType,
		&out.AIDiagnosis,
		&out.RadiologistDiagnosis,
		&out.ClinicalNotes,
		&out.DisagreementReason,
		&out.AdditionalFindings,
		&out.RadiologistConfidence,
		&out.ImageQualityRating,
		&out.FeedbackTimestamp,
	); err != nil {
		return nil, err
	}
	return &out, nil
}
