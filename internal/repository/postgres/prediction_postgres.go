package postgres

import (
	"context"
	"database/sql"

	"medscanapi/internal/model"
	"medscanapi/internal/repository"
)

// PredictionPostgres is a PostgreSQL implementation of repository.PredictionRepository.
type PredictionPostgres struct {
	db *sql.DB
}

// NewPredictionPostgres creates a new PredictionPostgres repository.
func NewPredictionPostgres(db *sql.DB) *PredictionPostgres {
	return &PredictionPostgres{db: db}
}

var _ repository.PredictionRepository = (*PredictionPostgres)(nil)

// Create inserts a prediction row and returns the stored record.
func (r *PredictionPostgres) Create(ctx context.Context, p *model.AIPrediction) (*model.AIPrediction, error) {
	const q = `
		INSERT INTO ai_predictions (id, scan_id, model_name, model_version, predicted_class, confidence_score, class_probabilities, inference_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING id, scan_id, model_name, model_version, predicted_class, confidence_score, class_probabilities, inference_timestamp
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.ScanID,
		p.ModelName,
		p.ModelVersion,
		p.PredictedClass,
		p.ConfidenceScore,
		p.ClassProbabilities,
	)
	var out model.AIPrediction
	if err := row.Scan(
		&out.ID,
		&out.ScanID,
		&out.ModelName,
		&out.ModelVersion,
		&out.PredictedClass,
		&out.ConfidenceScore,
		&out.ClassProbabilities,
		&out.InferenceTimestamp,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// LatestByScan fetches the most recent prediction for a scan.
func (r *PredictionPostgres) LatestByScan(ctx context.Context, scanID string) (*model.AIPrediction, error) {
	const q = `
		SELECT id, scan_id, model_name, model_version, predicted_class, confidence_score, class_probabilities, inference_timestamp
		FROM ai_predictions
		WHERE scan_id = $1
		ORDER BY inference_timestamp DESC
		LIMIT 1
	`
	row := r.db.QueryRowContext(ctx, q, scanID)
	var p model.AIPrediction
	if err := row.Scan(
		&p.ID,
		&p.ScanID,
		&p.ModelName,
		&p.ModelVersion,
		&p.PredictedClass,
		&p.ConfidenceScore,
		&p.ClassProbabilities,
		&p.InferenceTimestamp,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateGradcam records the storage location of a Grad-CAM output.
func (r *PredictionPostgres) CreateGradcam(ctx context.Context, g *model.GradcamOutput) error {
	const q = `
		INSERT INTO gradcam_outputs (ai_prediction_id, scan_image_id, heatmap_path, overlay_path, target_class)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, q,
		g.AIPredictionID,
		g.ScanImageID,
		g.HeatmapPath,
		g.OverlayPath,
		g.TargetClass,
	)
	return err
}

// LatestGradcamByPrediction fetches the most recent Grad-CAM row for a prediction.
func (r *PredictionPostgres) LatestGradcamByPrediction(ctx context.Context, predictionID string) (*model.GradcamOutput, error) {
	const q = `
		SELECT id, ai_prediction_id, scan_image_id, heatmap_path, overlay_path, COALESCE(target_class::text, ''), created_at
		FROM gradcam_outputs
		WHERE ai_prediction_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	row := r.db.QueryRowContext(ctx, q, predictionID)
	var g model.GradcamOutput
	var imageID sql.NullString
	if err := row.Scan(
		&g.ID,
		&g.AIPredictionID,
		&imageID,
		&g.HeatmapPath,
		&g.OverlayPath,
		&g.TargetClass,
		&g.CreatedAt,
	); err != nil {
		return nil, err
	}
	g.ScanImageID = imageID.String
	return &g, nil
}
