package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"medscanapi/internal/config"
)

// ErrRAGTimeout reports that the upstream did not answer within the request
// deadline. The sync chat handler maps it to 504.
var ErrRAGTimeout = errors.New("rag endpoint timeout")

// ErrRAGUnavailable reports a non-200 upstream response.
var ErrRAGUnavailable = errors.New("rag endpoint unavailable")

// RAGSource is one retrieved document reference from the upstream stats block.
type RAGSource struct {
	Rank  int     `json:"rank"`
	Title string  `json:"title"`
	Link  string  `json:"link"`
	Score float64 `json:"score"`
}

// RAGStats carries retrieval quality metadata from the upstream.
type RAGStats struct {
	Sources           []RAGSource `json:"sources"`
	AvgRetrievalScore *float64    `json:"avg_retrieval_score"`
	NumRetrievedDocs  *int        `json:"num_retrieved_docs"`
}

// RAGPrediction is the raw per-query prediction returned by the endpoint.
type RAGPrediction struct {
	Answer  string   `json:"answer"`
	Stats   RAGStats `json:"stats"`
	Success *bool    `json:"success"`
	Error   string   `json:"error"`
}

// RAGClient posts queries to the external RAG endpoint.
type RAGClient interface {
	Query(ctx context.Context, message string) (*RAGPrediction, error)
}

type ragClient struct {
	endpoint string
	http     *http.Client
}

// NewRAGClient builds a RAGClient for the configured endpoint. Deadlines come
// from the caller's context so the sync and async paths can differ.
func NewRAGClient(cfg config.RAGConfig) RAGClient {
	return &ragClient{
		endpoint: cfg.EndpointURL,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type ragRequest struct {
	Instances []ragInstance `json:"instances"`
}

type ragInstance struct {
	Query string `json:"query"`
}

type ragResponse struct {
	Predictions []RAGPrediction `json:"predictions"`
}

// Query posts {"instances":[{"query":...}]} and returns the first prediction.
func (c *ragClient) Query(ctx context.Context, message string) (*RAGPrediction, error) {
	if c.endpoint == "" {
		return nil, errors.New("rag endpoint is not configured")
	}

	payload, err := json.Marshal(ragRequest{Instances: []ragInstance{{Query: message}}})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, ErrRAGTimeout
		}
		return nil, fmt.Errorf("call rag endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRAGUnavailable, resp.StatusCode)
	}

	var rr ragResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, fmt.Errorf("decode rag response: %w", err)
	}
	if len(rr.Predictions) == 0 {
		return nil, errors.New("invalid rag response: no predictions")
	}

	pred := rr.Predictions[0]
	if pred.Success != nil && !*pred.Success {
		if pred.Error != "" {
			return nil, fmt.Errorf("rag processing failed: %s", pred.Error)
		}
		return nil, errors.New("rag processing failed")
	}
	return &pred, nil
}
