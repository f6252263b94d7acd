package mocks

import (
	"context"

	"medscanapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, r *model.Report) (*model.Report, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportRepository) LatestDetailByScan(ctx context.Context, scanID, radiologistUserID string) (*model.ReportDetail, error) {
	args := m.Called(ctx, scanID, radiologistUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportDetail), args.Error(1)
}

func (m *MockReportRepository) Update(ctx context.Context, id string, fields map[string]string) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockReportRepository) FindStatus(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockReportRepository) Publish(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReportRepository) Unpublish(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReportRepository) FindPatientUserID(ctx context.Context, reportID string) (string, error) {
	args := m.Called(ctx, reportID)
	return args.String(0), args.Error(1)
}

func (m *MockReportRepository) ListPublishedByPatient(ctx context.Context, patientProfileID string) ([]model.PatientReport, error) {
	args := m.Called(ctx, patientProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PatientReport), args.Error(1)
}

func (m *MockReportRepository) FindPublishedDetail(ctx context.Context, reportID, patientProfileID string) (*model.ReportDetail, error) {
	args := m.Called(ctx, reportID, patientProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReportDetail), args.Error(1)
}
