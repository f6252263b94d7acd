package mocks

import (
	"context"
	"io"

	"medscanapi/internal/inference"

	"github.com/stretchr/testify/mock"
)

type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) Predict(ctx context.Context, modelType string, image io.Reader) (*inference.Prediction, []byte, error) {
	args := m.Called(ctx, modelType, image)
	var pred *inference.Prediction
	if args.Get(0) != nil {
		pred = args.Get(0).(*inference.Prediction)
	}
	var gradcam []byte
	if args.Get(1) != nil {
		gradcam = args.Get(1).([]byte)
	}
	return pred, gradcam, args.Error(2)
}

type MockRAGClient struct {
	mock.Mock
}

func (m *MockRAGClient) Query(ctx context.Context, message string) (*inference.RAGPrediction, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inference.RAGPrediction), args.Error(1)
}
