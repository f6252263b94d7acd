// Package inference holds the HTTP clients for the external AI backends:
// the image classification endpoints and the RAG chat endpoint. The models
// themselves run elsewhere; this API only speaks JSON/multipart to them.
package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"medscanapi/internal/config"
)

// Model types routed by examination type and body region.
const (
	ModelTB         = "tb"
	ModelLungCancer = "lung_cancer"
)

// Prediction is the parsed classification result from a model endpoint.
type Prediction struct {
	PredictedClass     string
	Confidence         float64
	ClassProbabilities map[string]float64
}

// ModelClient calls an external classification endpoint with a scan image and
// returns the prediction plus the Grad-CAM overlay bytes when provided.
type ModelClient interface {
	Predict(ctx context.Context, modelType string, image io.Reader) (*Prediction, []byte, error)
}

type modelClient struct {
	endpoints map[string]string
	http      *http.Client
}

// NewModelClient builds a ModelClient from the configured endpoints.
// Outbound requests are traced through otelhttp.
func NewModelClient(cfg config.InferenceConfig) ModelClient {
	return &modelClient{
		endpoints: map[string]string{
			ModelTB:         cfg.TBEndpoint,
			ModelLungCancer: cfg.LungCancerEndpoint,
		},
		http: &http.Client{
			Timeout:   time.Duration(cfg.TimeoutSec) * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type modelResponse struct {
	PredictedClass     string             `json:"predicted_class"`
	Confidence         float64            `json:"confidence"`
	ClassProbabilities map[string]float64 `json:"class_probabilities"`
	GradcamImage       string             `json:"gradcam_image"`
}

// Predict uploads the image as multipart/form-data (field name: file) and
// decodes the JSON prediction. The Grad-CAM overlay arrives base64-encoded.
func (c *modelClient) Predict(ctx context.Context, modelType string, image io.Reader) (*Prediction, []byte, error) {
	endpoint := c.endpoints[modelType]
	if endpoint == "" {
		return nil, nil, fmt.Errorf("no endpoint configured for model %q", modelType)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "scan.jpg")
	if err != nil {
		return nil, nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, nil, fmt.Errorf("copy image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("call model endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("model endpoint returned %d", resp.StatusCode)
	}

	var mr modelResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, nil, fmt.Errorf("decode model response: %w", err)
	}

	pred := &Prediction{
		PredictedClass:     mr.PredictedClass,
		Confidence:         mr.Confidence,
		ClassProbabilities: mr.ClassProbabilities,
	}
	if pred.PredictedClass == "" {
		pred.PredictedClass = "Unknown"
	}

	var gradcam []byte
	if mr.GradcamImage != "" {
		gradcam, err = base64.StdEncoding.DecodeString(mr.GradcamImage)
		if err != nil {
			return nil, nil, fmt.Errorf("decode gradcam image: %w", err)
		}
	}

	return pred, gradcam, nil
}
