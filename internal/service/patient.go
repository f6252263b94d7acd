package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"medscanapi/internal/model"
	"medscanapi/internal/repository"
	"medscanapi/internal/storage"
)

// ImageLink is a downloadable scan image. URL is a time-limited presigned
// link; Path is the storage key and is only exposed to radiologists.
type ImageLink struct {
	URL    string `json:"url"`
	Path   string `json:"path,omitempty"`
	Size   int64  `json:"size"`
	Format string `json:"format"`
	Order  int    `json:"order"`
}

// PatientScanItem is one row in the patient's scan list, with enum values
// already cased for display.
type PatientScanItem struct {
	ID                 string    `json:"id"`
	ScanNumber         string    `json:"scan_number"`
	ExaminationType    string    `json:"examination_type"`
	BodyRegion         string    `json:"body_region"`
	UrgencyLevel       string    `json:"urgency_level"`
	Status             string    `json:"status"`
	ScanDate           time.Time `json:"scan_date"`
	CreatedAt          time.Time `json:"created_at"`
	PresentingSymptoms []string  `json:"presenting_symptoms"`
	ClinicalNotes      *string   `json:"clinical_notes"`
}

// PatientScanDetail is the full scan view for the patient portal.
type PatientScanDetail struct {
	PatientScanItem
	CurrentMedications []string    `json:"current_medications"`
	PreviousSurgeries  []string    `json:"previous_surgeries"`
	ImagingFacility    *string     `json:"imaging_facility"`
	ReferringPhysician *string     `json:"referring_physician"`
	Images             []ImageLink `json:"images"`
}

// PatientProfileView merges account and profile data. Profile fields are nil
// when the account has no patient profile yet.
type PatientProfileView struct {
	UserID                string     `json:"user_id"`
	Email                 string     `json:"email"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	Phone                 *string    `json:"phone"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	PatientID             *string    `json:"patient_id"`
	AgeYears              *int       `json:"age_years"`
	WeightKg              *float64   `json:"weight_kg"`
	HeightCm              *float64   `json:"height_cm"`
	Gender                *string    `json:"gender"`
	BloodType             *string    `json:"blood_type"`
	Allergies             []string   `json:"allergies"`
	EmergencyContactName  *string    `json:"emergency_contact_name"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone"`
	MedicalHistory        *string    `json:"medical_history"`
}

// PatientService serves the patient portal: own scans, published reports and
// the profile page. Patients never see drafts or other patients' data.
type PatientService interface {
	Scans(ctx context.Context, userID string) ([]PatientScanItem, error)
	ScanDetail(ctx context.Context, userID, scanID string) (*PatientScanDetail, error)
	Reports(ctx context.Context, userID string) ([]model.PatientReport, error)
	ReportDetail(ctx context.Context, userID, reportID string) (*model.ReportDetail, error)
	Profile(ctx context.Context, userID string) (*PatientProfileView, error)
}

type patientService struct {
	users   repository.UserRepository
	scans   repository.ScanRepository
	reports repository.ReportRepository
	store   storage.Storage
}

// NewPatientService constructs a PatientService.
func NewPatientService(users repository.UserRepository, scans repository.ScanRepository, reports repository.ReportRepository, store storage.Storage) PatientService {
	return &patientService{users: users, scans: scans, reports: reports, store: store}
}

// Scans lists the caller's scans. An account without a patient profile gets
// an empty list, not an error.
func (s *patientService) Scans(ctx context.Context, userID string) ([]PatientScanItem, error) {
	profile, err := s.users.FindPatientProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []PatientScanItem{}, nil
		}
		return nil, fmt.Errorf("find patient profile: %w", err)
	}

	scans, err := s.scans.ListByPatient(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}

	items := make([]PatientScanItem, 0, len(scans))
	for i := range scans {
		items = append(items, patientScanItem(&scans[i]))
	}
	return items, nil
}

func (s *patientService) ScanDetail(ctx context.Context, userID, scanID string) (*PatientScanDetail, error) {
	profile, err := s.users.FindPatientProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find patient profile: %w", err)
	}

	detail, err := s.scans.FindDetailForPatient(ctx, scanID, profile.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find scan: %w", err)
	}

	images, err := s.presignImages(ctx, scanID, false)
	if err != nil {
		return nil, err
	}

	return &PatientScanDetail{
		PatientScanItem:    patientScanItem(&detail.Scan),
		CurrentMedications: detail.CurrentMedications.OrEmpty(),
		PreviousSurgeries:  detail.PreviousSurgeries.OrEmpty(),
		ImagingFacility:    detail.ImagingFacility,
		ReferringPhysician: detail.ReferringPhysician,
		Images:             images,
	}, nil
}

// Reports lists the caller's published reports with display-cased enums.
func (s *patientService) Reports(ctx context.Context, userID string) ([]model.PatientReport, error) {
	profile, err := s.users.FindPatientProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []model.PatientReport{}, nil
		}
		return nil, fmt.Errorf("find patient profile: %w", err)
	}

	reports, err := s.reports.ListPublishedByPatient(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	for i := range reports {
		reports[i].ExaminationType = model.DisplayExamType(reports[i].ExaminationType)
		reports[i].BodyRegion = model.DisplayCapitalize(reports[i].BodyRegion)
	}
	if reports == nil {
		reports = []model.PatientReport{}
	}
	return reports, nil
}

func (s *patientService) ReportDetail(ctx context.Context, userID, reportID string) (*model.ReportDetail, error) {
	profile, err := s.users.FindPatientProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find patient profile: %w", err)
	}

	detail, err := s.reports.FindPublishedDetail(ctx, reportID, profile.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find report: %w", err)
	}

	detail.ExaminationType = model.DisplayExamType(detail.ExaminationType)
	detail.BodyRegion = model.DisplayCapitalize(detail.BodyRegion)
	return detail, nil
}

func (s *patientService) Profile(ctx context.Context, userID string) (*PatientProfileView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	view := &PatientProfileView{
		UserID:      user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Phone:       user.Phone,
		DateOfBirth: user.DateOfBirth,
		Allergies:   []string{},
	}

	profile, err := s.users.FindPatientProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Account exists but onboarding has not created a profile yet.
			return view, nil
		}
		return nil, fmt.Errorf("find patient profile: %w", err)
	}

	view.PatientID = &profile.PatientID
	view.AgeYears = profile.AgeYears
	view.WeightKg = profile.WeightKg
	view.HeightCm = profile.HeightCm
	view.Gender = profile.Gender
	view.BloodType = profile.BloodType
	if profile.Allergies != nil {
		view.Allergies = profile.Allergies
	}
	view.EmergencyContactName = profile.EmergencyContactName
	view.EmergencyContactPhone = profile.EmergencyContactPhone
	view.MedicalHistory = profile.MedicalHistory
	return view, nil
}

// presignImages loads a scan's images and mints download links. includePath
// controls whether the raw storage key is exposed alongside the URL.
func (s *patientService) presignImages(ctx context.Context, scanID string, includePath bool) ([]ImageLink, error) {
	return presignScanImages(ctx, s.scans, s.store, scanID, includePath)
}

func presignScanImages(ctx context.Context, scans repository.ScanRepository, store storage.Storage, scanID string, includePath bool) ([]ImageLink, error) {
	images, err := scans.ListImages(ctx, scanID)
	if err != nil {
		return nil, fmt.Errorf("list scan images: %w", err)
	}

	links := make([]ImageLink, 0, len(images))
	for _, img := range images {
		link := ImageLink{
			Size:   img.FileSizeBytes,
			Format: img.ImageFormat,
			Order:  img.ImageOrder,
		}
		if includePath {
			link.Path = img.ImagePath
		}
		url, err := store.PresignGet(ctx, img.ImagePath, presignExpiry)
		if err != nil {
			logJSON(map[string]any{"level": "warn", "msg": "presign failed", "scan_id": scanID, "key": img.ImagePath, "error": err.Error()})
			continue
		}
		link.URL = url
		links = append(links, link)
	}
	return links, nil
}

func patientScanItem(scan *model.Scan) PatientScanItem {
	return PatientScanItem{
		ID:                 scan.ID,
		ScanNumber:         scan.ScanNumber,
		ExaminationType:    model.DisplayExamType(scan.ExaminationType),
		BodyRegion:         model.DisplayCapitalize(scan.BodyRegion),
		UrgencyLevel:       model.DisplayCapitalize(scan.UrgencyLevel),
		Status:             scan.Status,
		ScanDate:           scan.ScanDate,
		CreatedAt:          scan.CreatedAt,
		PresentingSymptoms: scan.PresentingSymptoms.OrEmpty(),
		ClinicalNotes:      scan.ClinicalNotes,
	}
}
