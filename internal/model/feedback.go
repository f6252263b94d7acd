package model

import "time"

// Feedback types a radiologist can give on an AI prediction.
const (
	FeedbackAccept          = "accept"
	FeedbackPartialOverride = "partial_override"
	FeedbackFullOverride    = "full_override"
	FeedbackReject          = "reject"
)

// RadiologistFeedback is the recorded verdict on a scan's AI prediction.
type RadiologistFeedback struct {
	ID                    string    `json:"id"`
	ScanID                string    `json:"scan_id"`
	RadiologistProfileID  string    `json:"radiologist_id"`
	FeedbackType          string    `json:"feedback_type"`
	AIDiagnosis           *string   `json:"ai_diagnosis"`
	RadiologistDiagnosis  string    `json:"radiologist_diagnosis"`
	ClinicalNotes         *string   `json:"clinical_notes"`
	DisagreementReason    *string   `json:"disagreement_reason"`
	AdditionalFindings    *string   `json:"additional_findings"`
	RadiologistConfidence *float64  `json:"radiologist_confidence"`
	ImageQualityRating    *int      `json:"image_quality_rating"`
	FeedbackTimestamp     time.Time `json:"feedback_timestamp"`
}
