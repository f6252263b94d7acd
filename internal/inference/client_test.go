package inference

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medscanapi/internal/config"
)

func TestModelClientPredict(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	client := NewModelClient(config.InferenceConfig{
		TBEndpoint:         "https://models.example.org/tb/predict",
		LungCancerEndpoint: "https://models.example.org/lc/predict",
		TimeoutSec:         5,
	})
	ctx := context.Background()

	t.Run("multipart upload and parsed prediction", func(t *testing.T) {
		overlay := []byte("overlay-bytes")
		httpmock.RegisterResponder(http.MethodPost, "https://models.example.org/tb/predict",
			func(req *http.Request) (*http.Response, error) {
				require.True(t, strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data"))
				file, header, err := req.FormFile("file")
				require.NoError(t, err)
				defer file.Close()
				assert.Equal(t, "scan.jpg", header.Filename)

				return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
					"predicted_class":     "Tuberculosis",
					"confidence":          0.93,
					"class_probabilities": map[string]float64{"Tuberculosis": 0.93, "Normal": 0.07},
					"gradcam_image":       base64.StdEncoding.EncodeToString(overlay),
				})
			})

		pred, gradcam, err := client.Predict(ctx, ModelTB, strings.NewReader("jpeg-bytes"))
		require.NoError(t, err)
		assert.Equal(t, "Tuberculosis", pred.PredictedClass)
		assert.Equal(t, 0.93, pred.Confidence)
		assert.Equal(t, overlay, gradcam)
	})

	t.Run("missing class defaults to Unknown", func(t *testing.T) {
		httpmock.RegisterResponder(http.MethodPost, "https://models.example.org/lc/predict",
			httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
				"confidence": 0.5,
			}))

		pred, gradcam, err := client.Predict(ctx, ModelLungCancer, strings.NewReader("jpeg-bytes"))
		require.NoError(t, err)
		assert.Equal(t, "Unknown", pred.PredictedClass)
		assert.Nil(t, gradcam)
	})

	t.Run("upstream error status", func(t *testing.T) {
		httpmock.RegisterResponder(http.MethodPost, "https://models.example.org/tb/predict",
			httpmock.NewStringResponder(http.StatusInternalServerError, "boom"))

		_, _, err := client.Predict(ctx, ModelTB, strings.NewReader("jpeg-bytes"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("invalid gradcam encoding", func(t *testing.T) {
		httpmock.RegisterResponder(http.MethodPost, "https://models.example.org/tb/predict",
			httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
				"predicted_class": "Normal",
				"gradcam_image":   "not-base64!!",
			}))

		_, _, err := client.Predict(ctx, ModelTB, strings.NewReader("jpeg-bytes"))
		assert.Error(t, err)
	})

	t.Run("unconfigured model", func(t *testing.T) {
		_, _, err := client.Predict(ctx, "mri", strings.NewReader("jpeg-bytes"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no endpoint configured")
	})
}

func TestRAGClientQuery(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	client := NewRAGClient(config.RAGConfig{EndpointURL: "https://rag.example.org/query"})
	ctx := context.Background()

	t.Run("first prediction returned", func(t *testing.T) {
		httpmock.RegisterResponder(http.MethodPost, "https://rag.example.org/query",
			func(req *http.Request) (*http.Response, error) {
				var body ragRequest
				require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
				require.Len(t, body.Instances, 1)
				assert.Equal(t, "what is TB?", body.Instances[0].Query)

				return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
					"predictions": []map[string]any{{
						"answer": "TB is a bacterial infection.",
						"stats": map[string]any{
							"sources": []map[string]any{
								{"rank": 1, "title": "TB Overview", "link": "https://example.org/tb", "score": 0.9},
							},
							"avg_retrieval_score": 0.9,
							"num_retrieved_docs":  3,
						},
					}},
				})
			})

		pred, err := client.Query(ctx, "what is TB?")
		require.NoError(t, err)
		assert.Equal(t, "TB is a bacterial infection.", pred.Answer)
		require.Len(t, pred.Stats.Sources, 1)
		require.NotNil(t, pred.Stats.NumRetrievedDocs)
		assert.Equal(t, 3, *pred.Stats.NumRetrievedDocs)
	})

	t.Run("non-200 is unavailable", func(t *testing.T) {
		httpmock.RegisterResponder(http.MethodPost, "https://rag.example.org/query",
			httpmock.NewStringResponder(http.StatusBadGateway, "bad gateway"))

		_, err := client.Query(ctx, "anything")
		assert.ErrorIs(t, err, ErrRAGUnavailable)
	})

	t.Run("upstream reported failure", func(t *testing.T) {
		httpmock.RegisterResponder(http.MethodPost, "https://rag.example.org/query",
			httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
				"predictions": []map[string]any{{
					"answer":  "",
					"success": false,
					"error":   "vector store offline",
				}},
			}))

		_, err := client.Query(ctx, "anything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vector store offline")
	})

	t.Run("no predictions", func(t *testing.T) {
		httpmock.RegisterResponder(http.MethodPost, "https://rag.example.org/query",
			httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
				"predictions": []map[string]any{},
			}))

		_, err := client.Query(ctx, "anything")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no predictions")
	})

	t.Run("unconfigured endpoint", func(t *testing.T) {
		bare := NewRAGClient(config.RAGConfig{})
		_, err := bare.Query(ctx, "anything")
		assert.Error(t, err)
	})
}
