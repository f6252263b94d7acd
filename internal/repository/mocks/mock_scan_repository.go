package mocks

import (
	"context"

	"medscanapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockScanRepository struct {
	mock.Mock
}

func (m *MockScanRepository) ListByPatient(ctx context.Context, patientProfileID string) ([]model.Scan, error) {
	args := m.Called(ctx, patientProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Scan), args.Error(1)
}

func (m *MockScanRepository) FindByID(ctx context.Context, id string) (*model.Scan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Scan), args.Error(1)
}

func (m *MockScanRepository) FindDetail(ctx context.Context, scanID string) (*model.ScanDetail, error) {
	args := m.Called(ctx, scanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScanDetail), args.Error(1)
}

func (m *MockScanRepository) FindDetailForPatient(ctx context.Context, scanID, patientProfileID string) (*model.ScanDetail, error) {
	args := m.Called(ctx, scanID, patientProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScanDetail), args.Error(1)
}

func (m *MockScanRepository) ListPending(ctx context.Context) ([]model.WorklistScan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorklistScan), args.Error(1)
}

func (m *MockScanRepository) ListCompleted(ctx context.Context) ([]model.WorklistScan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WorklistScan), args.Error(1)
}

func (m *MockScanRepository) MarkInProgress(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScanRepository) MarkAIAnalyzed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScanRepository) MarkCompleted(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScanRepository) RevertToPending(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScanRepository) ListImages(ctx context.Context, scanID string) ([]model.ScanImage, error) {
	args := m.Called(ctx, scanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ScanImage), args.Error(1)
}

func (m *MockScanRepository) FindPrimaryImage(ctx context.Context, scanID string) (*model.ScanImage, error) {
	args := m.Called(ctx, scanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScanImage), args.Error(1)
}
