package mocks

import (
	"context"

	"medscanapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) Create(ctx context.Context, p *model.AIPrediction) (*model.AIPrediction, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AIPrediction), args.Error(1)
}

func (m *MockPredictionRepository) LatestByScan(ctx context.Context, scanID string) (*model.AIPrediction, error) {
	args := m.Called(ctx, scanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AIPrediction), args.Error(1)
}

func (m *MockPredictionRepository) CreateGradcam(ctx context.Context, g *model.GradcamOutput) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockPredictionRepository) LatestGradcamByPrediction(ctx context.Context, predictionID string) (*model.GradcamOutput, error) {
	args := m.Called(ctx, predictionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GradcamOutput), args.Error(1)
}
