package repository

import (
	"context"

	"medscanapi/internal/model"
)

// PredictionRepository defines data access for AI predictions and their
// Grad-CAM artifacts.
type PredictionRepository interface {
	// Create inserts a prediction row and returns the stored record.
	Create(ctx context.Context, p *model.AIPrediction) (*model.AIPrediction, error)

	// LatestByScan returns the most recent prediction for a scan.
	LatestByScan(ctx context.Context, scanID string) (*model.AIPrediction, error)

	// CreateGradcam records the storage location of a Grad-CAM output.
	CreateGradcam(ctx context.Context, g *model.GradcamOutput) error

	// LatestGradcamByPrediction returns the most recent Grad-CAM row for a prediction.
	LatestGradcamByPrediction(ctx context.Context, predictionID string) (*model.GradcamOutput, error)
}
