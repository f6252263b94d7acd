package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medscanapi/internal/config"
	"medscanapi/internal/inference"
	infMocks "medscanapi/internal/inference/mocks"
)

func testRAGConfig() config.RAGConfig {
	return config.RAGConfig{
		EndpointURL:    "https://rag.example.org/query",
		SyncTimeoutSec: 5,
		JobTimeoutSec:  30,
	}
}

func TestChatSync(t *testing.T) {
	ctx := context.Background()

	t.Run("empty message", func(t *testing.T) {
		svc := NewChatService(new(infMocks.MockRAGClient), testRAGConfig())
		_, err := svc.Chat(ctx, "user-1", "   ")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("cleaned answer with stats", func(t *testing.T) {
		rag := new(infMocks.MockRAGClient)
		svc := NewChatService(rag, testRAGConfig())

		score := 0.87
		docs := 4
		rag.On("Query", mock.Anything, "what is TB?").Return(&inference.RAGPrediction{
			Answer: "Answer: TB is a bacterial infection.\n\nLimitations: sources are limited.",
			Stats: inference.RAGStats{
				AvgRetrievalScore: &score,
				NumRetrievedDocs:  &docs,
				Sources: []inference.RAGSource{
					{Title: "TB Overview", Link: "https://example.org/tb"},
				},
			},
		}, nil).Once()

		answer, err := svc.Chat(ctx, "user-1", "what is TB?")
		require.NoError(t, err)
		assert.Equal(t, "TB is a bacterial infection.", answer.Response)
		require.Len(t, answer.Sources, 1)
		assert.Equal(t, "https://example.org/tb", answer.Sources[0].URL)
		assert.Equal(t, &score, answer.Stats.Confidence)
		assert.Equal(t, &docs, answer.Stats.NumDocs)
	})

	t.Run("upstream timeout passes through", func(t *testing.T) {
		rag := new(infMocks.MockRAGClient)
		svc := NewChatService(rag, testRAGConfig())

		rag.On("Query", mock.Anything, "slow").Return(nil, inference.ErrRAGTimeout).Once()

		_, err := svc.Chat(ctx, "user-1", "slow")
		assert.ErrorIs(t, err, inference.ErrRAGTimeout)
	})

	t.Run("empty cleaned answer is an error", func(t *testing.T) {
		rag := new(infMocks.MockRAGClient)
		svc := NewChatService(rag, testRAGConfig())

		rag.On("Query", mock.Anything, "hm").Return(&inference.RAGPrediction{
			Answer: "Limitations: nothing but caveats",
		}, nil).Once()

		_, err := svc.Chat(ctx, "user-1", "hm")
		assert.Error(t, err)
	})
}

func TestChatJobs(t *testing.T) {
	t.Run("background job completes", func(t *testing.T) {
		rag := new(infMocks.MockRAGClient)
		svc := NewChatService(rag, testRAGConfig())

		rag.On("Query", mock.Anything, "what is TB?").Return(&inference.RAGPrediction{
			Answer: "TB is a bacterial infection.",
		}, nil).Once()

		started, err := svc.StartJob("user-1", "what is TB?")
		require.NoError(t, err)
		assert.Equal(t, ChatJobPending, started.Status)
		require.NotEmpty(t, started.JobID)

		require.Eventually(t, func() bool {
			status, err := svc.JobStatus("user-1", started.JobID)
			return err == nil && status.Status == ChatJobCompleted
		}, 2*time.Second, 10*time.Millisecond)

		status, err := svc.JobStatus("user-1", started.JobID)
		require.NoError(t, err)
		assert.Equal(t, 100, status.Progress)
		require.NotNil(t, status.Result)
		assert.Equal(t, "TB is a bacterial infection.", status.Result.Response)
	})

	t.Run("background job failure", func(t *testing.T) {
		rag := new(infMocks.MockRAGClient)
		svc := NewChatService(rag, testRAGConfig())

		rag.On("Query", mock.Anything, "boom").Return(nil, inference.ErrRAGUnavailable).Once()

		started, err := svc.StartJob("user-1", "boom")
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			status, err := svc.JobStatus("user-1", started.JobID)
			return err == nil && status.Status == ChatJobFailed
		}, 2*time.Second, 10*time.Millisecond)

		status, err := svc.JobStatus("user-1", started.JobID)
		require.NoError(t, err)
		assert.NotEmpty(t, status.Error)
		assert.Nil(t, status.Result)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		svc := NewChatService(new(infMocks.MockRAGClient), testRAGConfig())
		_, err := svc.StartJob("user-1", "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown job", func(t *testing.T) {
		svc := NewChatService(new(infMocks.MockRAGClient), testRAGConfig())
		_, err := svc.JobStatus("user-1", "nope")
		assert.ErrorIs(t, err, ErrJobNotFound)
	})

	t.Run("expired job reads as failed, then disappears", func(t *testing.T) {
		rag := new(infMocks.MockRAGClient)
		svc := NewChatService(rag, testRAGConfig())

		rag.On("Query", mock.Anything, "old question").Return(&inference.RAGPrediction{
			Answer: "Old answer.",
		}, nil).Once()

		started, err := svc.StartJob("user-1", "old question")
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			status, err := svc.JobStatus("user-1", started.JobID)
			return err == nil && status.Status == ChatJobCompleted
		}, 2*time.Second, 10*time.Millisecond)

		// Backdate the job past its TTL.
		v, ok := svc.(*chatService).jobs.Get(started.JobID)
		require.True(t, ok)
		job := v.(*chatJob)
		job.mu.Lock()
		job.createdAt = time.Now().Add(-chatJobTTL - time.Minute)
		job.mu.Unlock()

		status, err := svc.JobStatus("user-1", started.JobID)
		require.NoError(t, err)
		assert.Equal(t, ChatJobFailed, status.Status)
		assert.Equal(t, "Job expired", status.Error)
		assert.Nil(t, status.Result)

		// The expired read removes the job.
		_, err = svc.JobStatus("user-1", started.JobID)
		assert.ErrorIs(t, err, ErrJobNotFound)
	})

	t.Run("jobs are private to their owner", func(t *testing.T) {
		rag := new(infMocks.MockRAGClient)
		svc := NewChatService(rag, testRAGConfig())

		rag.On("Query", mock.Anything, "mine").Return(&inference.RAGPrediction{
			Answer: "Owned answer.",
		}, nil).Once()

		started, err := svc.StartJob("user-1", "mine")
		require.NoError(t, err)

		_, err = svc.JobStatus("user-2", started.JobID)
		assert.ErrorIs(t, err, ErrJobForbidden)
	})
}

func TestChatHealth(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		rag := new(infMocks.MockRAGClient)
		svc := NewChatService(rag, testRAGConfig())

		rag.On("Query", mock.Anything, "test").Return(&inference.RAGPrediction{Answer: "ok."}, nil).Once()

		health := svc.Health(ctx)
		assert.Equal(t, "healthy", health.Status)
		assert.Equal(t, "https://rag.example.org/query", health.Endpoint)
		assert.Empty(t, health.Error)
	})

	t.Run("unhealthy", func(t *testing.T) {
		rag := new(infMocks.MockRAGClient)
		svc := NewChatService(rag, testRAGConfig())

		rag.On("Query", mock.Anything, "test").Return(nil, inference.ErrRAGUnavailable).Once()

		health := svc.Health(ctx)
		assert.Equal(t, "unhealthy", health.Status)
		assert.NotEmpty(t, health.Error)
	})
}
