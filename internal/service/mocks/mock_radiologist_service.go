package mocks

import (
	"context"

	"medscanapi/internal/model"
	"medscanapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockRadiologistService struct {
	mock.Mock
}

func (m *MockRadiologistService) PendingScans(ctx context.Context) ([]service.WorklistItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.WorklistItem), args.Error(1)
}

func (m *MockRadiologistService) CompletedScans(ctx context.Context) ([]service.WorklistItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.WorklistItem), args.Error(1)
}

func (m *MockRadiologistService) ScanDetail(ctx context.Context, scanID string) (*service.ReviewScanDetail, error) {
	args := m.Called(ctx, scanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReviewScanDetail), args.Error(1)
}

func (m *MockRadiologistService) StartAnalysis(ctx context.Context, userID, scanID string) (*service.AnalysisStarted, error) {
	args := m.Called(ctx, userID, scanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalysisStarted), args.Error(1)
}

func (m *MockRadiologistService) AIResults(ctx context.Context, scanID string) (*service.AIResults, error) {
	args := m.Called(ctx, scanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AIResults), args.Error(1)
}

func (m *MockRadiologistService) DraftReport(ctx context.Context, userID, scanID string) (*model.ReportDetail, error) {
	args := m.Called(ctx, userID, scanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportDetail), args.Error(1)
}

func (m *MockRadiologistService) SubmitFeedback(ctx context.Context, userID, scanID string, req *service.FeedbackRequest) (*model.RadiologistFeedback, error) {
	args := m.Called(ctx, userID, scanID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RadiologistFeedback), args.Error(1)
}

func (m *MockRadiologistService) UpdateReport(ctx context.Context, userID, reportID string, upd *model.ReportUpdate) error {
	args := m.Called(ctx, userID, reportID, upd)
	return args.Error(0)
}

func (m *MockRadiologistService) PublishReport(ctx context.Context, userID, reportID string) error {
	args := m.Called(ctx, userID, reportID)
	return args.Error(0)
}

func (m *MockRadiologistService) UnpublishReport(ctx context.Context, userID, reportID string) error {
	args := m.Called(ctx, userID, reportID)
	return args.Error(0)
}

func (m *MockRadiologistService) Profile(ctx context.Context, userID string) (*service.RadiologistProfileView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RadiologistProfileView), args.Error(1)
}
