package repository

import (
	"context"

	"medscanapi/internal/model"
)

// ScanRepository defines data access for scans and their images.
type ScanRepository interface {
	// ListByPatient returns all scans of a patient profile, newest scan date first.
	ListByPatient(ctx context.Context, patientProfileID string) ([]model.Scan, error)

	// FindByID returns a bare scan row.
	FindByID(ctx context.Context, id string) (*model.Scan, error)

	// FindDetail returns the joined detail view of a scan.
	FindDetail(ctx context.Context, scanID string) (*model.ScanDetail, error)

	// FindDetailForPatient returns the detail view only when the scan belongs
	// to the given patient profile.
	FindDetailForPatient(ctx context.Context, scanID, patientProfileID string) (*model.ScanDetail, error)

	// ListPending returns the radiologist worklist: scans in pending,
	// in_progress or ai_analyzed, ordered emergent > urgent > routine, then
	// newest first.
	ListPending(ctx context.Context) ([]model.WorklistScan, error)

	// ListCompleted returns completed scans joined with their report status.
	ListCompleted(ctx context.Context) ([]model.WorklistScan, error)

	// MarkInProgress moves a scan to in_progress and stamps analysis start.
	MarkInProgress(ctx context.Context, id string) error

	// MarkAIAnalyzed moves a scan to ai_analyzed and stamps analysis completion.
	MarkAIAnalyzed(ctx context.Context, id string) error

	// MarkCompleted moves a scan to completed and stamps review completion.
	MarkCompleted(ctx context.Context, id string) error

	// RevertToPending puts a scan back in the worklist after a failed analysis.
	RevertToPending(ctx context.Context, id string) error

	// ListImages returns a scan's images ordered by image_order.
	ListImages(ctx context.Context, scanID string) ([]model.ScanImage, error)

	// FindPrimaryImage returns the first image of a scan (image_order = 1).
	FindPrimaryImage(ctx context.Context, scanID string) (*model.ScanImage, error)
}
