package mocks

import (
	"context"

	"medscanapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, f *model.RadiologistFeedback) (*model.RadiologistFeedback, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RadiologistFeedback), args.Error(1)
}
