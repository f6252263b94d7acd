package mocks

import (
	"context"

	"medscanapi/internal/model"
	"medscanapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPatientService struct {
	mock.Mock
}

func (m *MockPatientService) Scans(ctx context.Context, userID string) ([]service.PatientScanItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PatientScanItem), args.Error(1)
}

func (m *MockPatientService) ScanDetail(ctx context.Context, userID, scanID string) (*service.PatientScanDetail, error) {
	args := m.Called(ctx, userID, scanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PatientScanDetail), args.Error(1)
}

func (m *MockPatientService) Reports(ctx context.Context, userID string) ([]model.PatientReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PatientReport), args.Error(1)
}

func (m *MockPatientService) ReportDetail(ctx context.Context, userID, reportID string) (*model.ReportDetail, error) {
	args := m.Called(ctx, userID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportDetail), args.Error(1)
}

func (m *MockPatientService) Profile(ctx context.Context, userID string) (*service.PatientProfileView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PatientProfileView), args.Error(1)
}
