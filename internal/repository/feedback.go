package repository

import (
	"context"

	"medscanapi/internal/model"
)

// FeedbackRepository defines data access for radiologist feedback.
type FeedbackRepository interface {
	// Create inserts a feedback row and returns the stored record.
	Create(ctx context.Context, f *model.RadiologistFeedback) (*model.RadiologistFeedback, error)
}
