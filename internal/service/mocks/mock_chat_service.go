package mocks

import (
	"context"

	"medscanapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Chat(ctx context.Context, userID, message string) (*service.ChatAnswer, error) {
	args := m.Called(ctx, userID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatAnswer), args.Error(1)
}

func (m *MockChatService) StartJob(userID, message string) (*service.ChatJobStarted, error) {
	args := m.Called(userID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatJobStarted), args.Error(1)
}

func (m *MockChatService) JobStatus(userID, jobID string) (*service.ChatJobStatus, error) {
	args := m.Called(userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ChatJobStatus), args.Error(1)
}

func (m *MockChatService) Health(ctx context.Context) *service.ChatHealth {
	args := m.Called(ctx)
	return args.Get(0).(*service.ChatHealth)
}
