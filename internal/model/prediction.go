package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Probabilities scans a JSONB class_probabilities column.
type Probabilities map[string]float64

func (p *Probabilities) Scan(src any) error {
	if src == nil {
		*p = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported probabilities source %T", src)
	}
	return json.Unmarshal(b, p)
}

func (p Probabilities) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

// AIPrediction is a persisted model inference result for a scan.
type AIPrediction struct {
	ID                 string        `json:"id"`
	ScanID             string        `json:"scan_id"`
	ModelName          string        `json:"model_name"`
	ModelVersion       string        `json:"model_version"`
	PredictedClass     string        `json:"predicted_class"`
	ConfidenceScore    float64       `json:"confidence_score"`
	ClassProbabilities Probabilities `json:"class_probabilities"`
	InferenceTimestamp time.Time     `json:"inference_timestamp"`
}

// GradcamOutput records where the Grad-CAM artifacts for a prediction live.
type GradcamOutput struct {
	ID             string    `json:"id"`
	AIPredictionID string    `json:"ai_prediction_id"`
	ScanImageID    string    `json:"scan_image_id"`
	HeatmapPath    *string   `json:"heatmap_path"`
	OverlayPath    *string   `json:"overlay_path"`
	TargetClass    string    `json:"target_class"`
	CreatedAt      time.Time `json:"created_at"`
}
