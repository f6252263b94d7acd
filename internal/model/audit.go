package model

import "time"

// Audit actions recorded by the API. Writes are best-effort and never fail
// the request they describe.
const (
	AuditLogin             = "login"
	AuditAnalysisStarted   = "ai_analysis_started"
	AuditFeedbackSubmitted = "feedback_submitted"
	AuditReportPublished   = "report_published"
	AuditReportUnpublished = "report_unpublished"
)

// AuditLog is one row in the audit trail.
type AuditLog struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Detail     map[string]any `json:"detail"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Notification is a queued message for a user, surfaced by the portals.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
