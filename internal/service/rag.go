package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"medscanapi/internal/config"
	"medscanapi/internal/inference"
)

// Chat job lifecycle states.
const (
	ChatJobPending    = "pending"
	ChatJobProcessing = "processing"
	ChatJobCompleted  = "completed"
	ChatJobFailed     = "failed"
)

// chatJobTTL is how long a chat job stays live. Reading an expired job
// reports it as failed with "Job expired" and removes it; the cache retains
// entries past the TTL so recently-expired jobs still resolve.
const chatJobTTL = 10 * time.Minute

// ChatStats summarizes retrieval quality for the UI.
type ChatStats struct {
	Confidence *float64 `json:"confidence"`
	NumDocs    *int     `json:"num_docs"`
}

// ChatAnswer is a cleaned assistant response with its citations.
type ChatAnswer struct {
	Response string       `json:"response"`
	Sources  []ChatSource `json:"sources"`
	Stats    ChatStats    `json:"stats"`
}

// ChatJobStarted acknowledges an accepted background chat job.
type ChatJobStarted struct {
	JobID   string `json:"job_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ChatJobStatus is a point-in-time view of a background chat job.
type ChatJobStatus struct {
	JobID    string      `json:"job_id"`
	Status   string      `json:"status"`
	Progress int         `json:"progress"`
	Result   *ChatAnswer `json:"result,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// ChatHealth reports reachability of the upstream assistant endpoint.
type ChatHealth struct {
	Status   string `json:"status"`
	Endpoint string `json:"endpoint"`
	Error    string `json:"error,omitempty"`
}

// ChatService fronts the external RAG assistant: a synchronous path with a
// tight deadline and a polled background path for slow generations.
type ChatService interface {
	// Chat answers synchronously. Slow upstreams surface
	// inference.ErrRAGTimeout so callers can switch to the async path.
	Chat(ctx context.Context, userID, message string) (*ChatAnswer, error)

	// StartJob accepts a message for background processing.
	StartJob(userID, message string) (*ChatJobStarted, error)

	// JobStatus returns the job's current state. Jobs are private to the
	// user that started them and expire after chatJobTTL.
	JobStatus(userID, jobID string) (*ChatJobStatus, error)

	// Health probes the upstream endpoint with a test query.
	Health(ctx context.Context) *ChatHealth
}

type chatJob struct {
	mu        sync.Mutex
	userID    string
	createdAt time.Time
	status    string
	progress  int
	result    *ChatAnswer
	errMsg    string
}

func (j *chatJob) set(status string, progress int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = status
	j.progress = progress
}

func (j *chatJob) complete(result *ChatAnswer) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = ChatJobCompleted
	j.progress = 100
	j.result = result
}

func (j *chatJob) failWith(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = ChatJobFailed
	j.errMsg = msg
}

type chatService struct {
	rag         inference.RAGClient
	jobs        *cache.Cache
	endpoint    string
	syncTimeout time.Duration
	jobTimeout  time.Duration
}

// NewChatService constructs a ChatService. Jobs are kept in an in-process
// TTL cache; a multi-replica deployment would need a shared store instead.
func NewChatService(rag inference.RAGClient, cfg config.RAGConfig) ChatService {
	return &chatService{
		rag:         rag,
		jobs:        cache.New(2*chatJobTTL, 2*time.Minute),
		endpoint:    cfg.EndpointURL,
		syncTimeout: time.Duration(cfg.SyncTimeoutSec) * time.Second,
		jobTimeout:  time.Duration(cfg.JobTimeoutSec) * time.Second,
	}
}

func (s *chatService) Chat(ctx context.Context, userID, message string) (*ChatAnswer, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.syncTimeout)
	defer cancel()

	logJSON(map[string]any{"level": "info", "msg": "chat query", "user_id": userID, "chars": len(message)})

	pred, err := s.rag.Query(ctx, message)
	if err != nil {
		return nil, err
	}
	return buildChatAnswer(pred)
}

func (s *chatService) StartJob(userID, message string) (*ChatJobStarted, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	jobID := uuid.NewString()
	job := &chatJob{userID: userID, createdAt: time.Now(), status: ChatJobPending}
	s.jobs.Set(jobID, job, cache.DefaultExpiration)

	go s.processJob(jobID, job, message)

	logJSON(map[string]any{"level": "info", "msg": "chat job created", "job_id": jobID, "user_id": userID})
	return &ChatJobStarted{
		JobID:   jobID,
		Status:  ChatJobPending,
		Message: "Assistant processing started",
	}, nil
}

func (s *chatService) processJob(jobID string, job *chatJob, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	job.set(ChatJobProcessing, 20)

	pred, err := s.rag.Query(ctx, message)
	if err != nil {
		logJSON(map[string]any{"level": "error", "msg": "chat job failed", "job_id": jobID, "error": err.Error()})
		job.failWith(err.Error())
		return
	}
	job.set(ChatJobProcessing, 80)

	answer, err := buildChatAnswer(pred)
	if err != nil {
		logJSON(map[string]any{"level": "error", "msg": "chat job failed", "job_id": jobID, "error": err.Error()})
		job.failWith(err.Error())
		return
	}

	job.complete(answer)
	logJSON(map[string]any{"level": "info", "msg": "chat job completed", "job_id": jobID, "chars": len(answer.Response)})
}

func (s *chatService) JobStatus(userID, jobID string) (*ChatJobStatus, error) {
	v, ok := s.jobs.Get(jobID)
	if !ok {
		return nil, ErrJobNotFound
	}
	job := v.(*chatJob)

	job.mu.Lock()
	defer job.mu.Unlock()
	if job.userID != userID {
		return nil, ErrJobForbidden
	}
	if time.Since(job.createdAt) > chatJobTTL {
		s.jobs.Delete(jobID)
		return &ChatJobStatus{
			JobID:  jobID,
			Status: ChatJobFailed,
			Error:  "Job expired",
		}, nil
	}
	return &ChatJobStatus{
		JobID:    jobID,
		Status:   job.status,
		Progress: job.progress,
		Result:   job.result,
		Error:    job.errMsg,
	}, nil
}

func (s *chatService) Health(ctx context.Context) *ChatHealth {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	health := &ChatHealth{Status: "healthy", Endpoint: s.endpoint}
	if _, err := s.rag.Query(ctx, "test"); err != nil {
		health.Status = "unhealthy"
		health.Error = err.Error()
	}
	return health
}

// buildChatAnswer cleans the raw prediction and assembles the response.
func buildChatAnswer(pred *inference.RAGPrediction) (*ChatAnswer, error) {
	cleaned := cleanChatAnswer(pred.Answer)
	if cleaned == "" {
		return nil, errors.New("assistant returned an empty answer")
	}
	return &ChatAnswer{
		Response: cleaned,
		Sources:  extractChatSources(pred),
		Stats: ChatStats{
			Confidence: pred.Stats.AvgRetrievalScore,
			NumDocs:    pred.Stats.NumRetrievedDocs,
		},
	}, nil
}
