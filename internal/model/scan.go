package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Scan workflow statuses. Transitions: pending -> in_progress -> ai_analyzed
// -> completed, with a revert to pending when analysis fails.
const (
	ScanStatusPending             = "pending"
	ScanStatusInProgress          = "in_progress"
	ScanStatusAIAnalyzed          = "ai_analyzed"
	ScanStatusRadiologistReviewed = "radiologist_reviewed"
	ScanStatusCompleted           = "completed"
	ScanStatusCancelled           = "cancelled"
)

// Urgency levels.
const (
	UrgencyRoutine  = "routine"
	UrgencyUrgent   = "urgent"
	UrgencyEmergent = "emergent"
)

// TextArray scans a PostgreSQL text[] column that the queries project through
// array_to_json. Storing as JSON on the wire avoids hand-parsing array literals.
type TextArray []string

func (a *TextArray) Scan(src any) error {
	if src == nil {
		*a = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported text array source %T", src)
	}
	return json.Unmarshal(b, a)
}

func (a TextArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// OrEmpty returns a non-nil slice so JSON responses render [] instead of null.
func (a TextArray) OrEmpty() []string {
	if a == nil {
		return []string{}
	}
	return a
}

// Scan is an imaging study request moving through the clinical workflow.
type Scan struct {
	ID                           string     `json:"id"`
	PatientProfileID             string     `json:"patient_id"`
	ScanNumber                   string     `json:"scan_number"`
	ExaminationType              string     `json:"examination_type"`
	BodyRegion                   string     `json:"body_region"`
	UrgencyLevel                 string     `json:"urgency_level"`
	PresentingSymptoms           TextArray  `json:"presenting_symptoms"`
	CurrentMedications           TextArray  `json:"current_medications"`
	PreviousSurgeries            TextArray  `json:"previous_surgeries"`
	ScanDate                     time.Time  `json:"scan_date"`
	ImagingFacility              *string    `json:"imaging_facility"`
	ReferringPhysician           *string    `json:"referring_physician"`
	ClinicalNotes                *string    `json:"clinical_notes"`
	Status                       string     `json:"status"`
	CreatedAt                    time.Time  `json:"created_at"`
	AIAnalysisStartedAt          *time.Time `json:"ai_analysis_started_at"`
	AIAnalysisCompletedAt        *time.Time `json:"ai_analysis_completed_at"`
	RadiologistReviewCompletedAt *time.Time `json:"radiologist_review_completed_at"`
}

// ScanImage is one stored image belonging to a scan. ImagePath is the object
// storage key; presigned URLs are minted on read.
type ScanImage struct {
	ID            string    `json:"id"`
	ScanID        string    `json:"scan_id"`
	ImagePath     string    `json:"image_path"`
	ImageOrder    int       `json:"image_order"`
	FileSizeBytes int64     `json:"file_size_bytes"`
	ImageFormat   string    `json:"image_format"`
	CreatedAt     time.Time `json:"created_at"`
}

// WorklistScan is a scan row joined with patient identity for list views.
type WorklistScan struct {
	Scan
	PatientName  string  `json:"patient_name"`
	PatientID    string  `json:"patient_id"`
	ReportStatus *string `json:"report_status,omitempty"`
}

// ScanDetail is the full joined view returned by the detail endpoints.
type ScanDetail struct {
	Scan
	PatientName string   `json:"patient_name"`
	PatientID   string   `json:"patient_id"`
	AgeYears    *int     `json:"age_years"`
	Gender      *string  `json:"gender"`
	BloodType   *string  `json:"blood_type"`
	Allergies   []string `json:"allergies"`
}
