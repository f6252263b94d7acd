package model

import "time"

// Report statuses and types.
const (
	ReportStatusDraft     = "draft"
	ReportStatusPublished = "published"

	ReportTypePreliminaryAI = "preliminary_ai"
	ReportTypeFinal         = "final"
)

// Report is a versioned diagnostic report for a scan. Patients only ever see
// published reports; drafts stay inside the radiologist portal.
type Report struct {
	ID                 string     `json:"id"`
	ScanID             string     `json:"scan_id"`
	ReportNumber       string     `json:"report_number"`
	ReportType         string     `json:"report_type"`
	ReportStatus       string     `json:"report_status"`
	ReportTitle        string     `json:"report_title"`
	ClinicalIndication *string    `json:"clinical_indication"`
	Technique          *string    `json:"technique"`
	Findings           *string    `json:"findings"`
	Impression         *string    `json:"impression"`
	Recommendations    *string    `json:"recommendations"`
	PublishedAt        *time.Time `json:"published_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ReportUpdate carries the editable report sections. Nil fields are left
// untouched by the update.
type ReportUpdate struct {
	ReportTitle        *string `json:"report_title"`
	ClinicalIndication *string `json:"clinical_indication"`
	Technique          *string `json:"technique"`
	Findings           *string `json:"findings"`
	Impression         *string `json:"impression"`
	Recommendations    *string `json:"recommendations"`
}

// Fields returns the non-nil sections as column -> value, for dynamic updates
// and for the edit history entry appended alongside them.
func (u *ReportUpdate) Fields() map[string]string {
	out := make(map[string]string)
	set := func(col string, v *string) {
		if v != nil {
			out[col] = *v
		}
	}
	set("report_title", u.ReportTitle)
	set("clinical_indication", u.ClinicalIndication)
	set("technique", u.Technique)
	set("findings", u.Findings)
	set("impression", u.Impression)
	set("recommendations", u.Recommendations)
	return out
}

// PatientReport is a published report row joined with its scan for the
// patient portal list view.
type PatientReport struct {
	ID              string     `json:"id"`
	ReportNumber    string     `json:"report_number"`
	ReportTitle     string     `json:"report_title"`
	ReportStatus    string     `json:"report_status"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
	ScanNumber      string     `json:"scan_number"`
	ExaminationType string     `json:"examination_type"`
	BodyRegion      string     `json:"body_region"`
	ScanDate        time.Time  `json:"scan_date"`
}

// ReportDetail is the full joined view with patient identity.
type ReportDetail struct {
	Report
	ScanNumber      string  `json:"scan_number"`
	PatientName     string  `json:"patient_name"`
	ExaminationType string  `json:"examination_type"`
	BodyRegion      string  `json:"body_region"`
	ScanDate        time.Time `json:"scan_date"`
	RadiologistName *string `json:"radiologist_name,omitempty"`
	LicenseNumber   *string `json:"license_number,omitempty"`
	Specialization  *string `json:"specialization,omitempty"`
}
