package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"medscanapi/internal/config"
	"medscanapi/internal/inference"
	"medscanapi/internal/model"
	"medscanapi/internal/repository"
	"medscanapi/internal/storage"
)

// WorklistItem is one row in the radiologist worklists. Enum values are
// display-cased; ReportStatus is only set on the completed list.
type WorklistItem struct {
	ID                 string    `json:"id"`
	ScanNumber         string    `json:"scan_number"`
	PatientName        string    `json:"patient_name"`
	PatientID          string    `json:"patient_id"`
	ExaminationType    string    `json:"examination_type"`
	BodyRegion         string    `json:"body_region"`
	UrgencyLevel       string    `json:"urgency_level"`
	Status             string    `json:"status"`
	ScanDate           time.Time `json:"scan_date"`
	CreatedAt          time.Time `json:"created_at"`
	PresentingSymptoms []string  `json:"presenting_symptoms"`
	ClinicalNotes      *string   `json:"clinical_notes"`
	ReportStatus       *string   `json:"report_status,omitempty"`
}

// ReviewScanDetail is the full scan view for the radiologist portal,
// including patient medical context and raw image storage keys.
type ReviewScanDetail struct {
	WorklistItem
	AgeYears           *int        `json:"age_years"`
	Gender             *string     `json:"gender"`
	BloodType          *string     `json:"blood_type"`
	Allergies          []string    `json:"allergies"`
	CurrentMedications []string    `json:"current_medications"`
	PreviousSurgeries  []string    `json:"previous_surgeries"`
	ImagingFacility    *string     `json:"imaging_facility"`
	ReferringPhysician *string     `json:"referring_physician"`
	Images             []ImageLink `json:"images"`
}

// AnalysisStarted acknowledges a kicked-off background analysis.
type AnalysisStarted struct {
	Message string `json:"message"`
	ScanID  string `json:"scan_id"`
	Model   string `json:"model"`
	Status  string `json:"status"`
}

// AIResults is the analysis outcome view: the stored prediction plus fresh
// presigned links to the Grad-CAM overlay and the original image.
type AIResults struct {
	PredictionID       string             `json:"prediction_id"`
	PredictedClass     string             `json:"predicted_class"`
	Confidence         float64            `json:"confidence"`
	ClassProbabilities map[string]float64 `json:"class_probabilities"`
	ModelName          string             `json:"model_name"`
	ModelVersion       string             `json:"model_version"`
	InferenceTimestamp time.Time          `json:"inference_timestamp"`
	GradcamURL         *string            `json:"gradcam_url"`
	OriginalImageURL   *string            `json:"original_image_url"`
}

// FeedbackRequest is the radiologist's verdict payload.
type FeedbackRequest struct {
	FeedbackType         string   `json:"feedback_type"`
	RadiologistDiagnosis string   `json:"radiologist_diagnosis"`
	ClinicalNotes        *string  `json:"clinical_notes"`
	DisagreementReason   *string  `json:"disagreement_reason"`
	AdditionalFindings   *string  `json:"additional_findings"`
	ConfidenceLevel      *float64 `json:"confidence_level"`
	ImageQualityRating   *int     `json:"image_quality_rating"`
}

// RadiologistProfileView merges account and professional credentials.
type RadiologistProfileView struct {
	UserID            string  `json:"user_id"`
	Email             string  `json:"email"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Phone             *string `json:"phone"`
	LicenseNumber     *string `json:"license_number"`
	Specialization    *string `json:"specialization"`
	YearsOfExperience *int    `json:"years_of_experience"`
	Institution       *string `json:"institution"`
}

// RadiologistService serves the radiologist portal: worklists, the AI
// analysis workflow, draft reports, feedback and publication.
type RadiologistService interface {
	PendingScans(ctx context.Context) ([]WorklistItem, error)
	CompletedScans(ctx context.Context) ([]WorklistItem, error)
	ScanDetail(ctx context.Context, scanID string) (*ReviewScanDetail, error)

	// StartAnalysis routes the scan to a classification model, moves it to
	// in_progress and runs the inference in the background. The scan reverts
	// to pending if the analysis fails.
	StartAnalysis(ctx context.Context, userID, scanID string) (*AnalysisStarted, error)

	// AIResults returns the latest stored prediction for a scan, or
	// ErrNoResults when the scan has not been analyzed.
	AIResults(ctx context.Context, scanID string) (*AIResults, error)

	// DraftReport returns the scan's newest report, creating a prefilled
	// draft from the diagnosis template on first access.
	DraftReport(ctx context.Context, userID, scanID string) (*model.ReportDetail, error)

	// SubmitFeedback stores the radiologist's verdict and completes the scan.
	SubmitFeedback(ctx context.Context, userID, scanID string, req *FeedbackRequest) (*model.RadiologistFeedback, error)

	// UpdateReport applies the non-nil sections and appends an edit history entry.
	UpdateReport(ctx context.Context, userID, reportID string, upd *model.ReportUpdate) error

	// PublishReport makes a report visible to the patient and notifies them.
	PublishReport(ctx context.Context, userID, reportID string) error

	// UnpublishReport retracts a published report back to draft. Reports that
	// are not published return ErrNotPublished.
	UnpublishReport(ctx context.Context, userID, reportID string) error

	Profile(ctx context.Context, userID string) (*RadiologistProfileView, error)
}

type radiologistService struct {
	users         repository.UserRepository
	scans         repository.ScanRepository
	predictions   repository.PredictionRepository
	reports       repository.ReportRepository
	feedback      repository.FeedbackRepository
	audit         repository.AuditRepository
	notifications repository.NotificationRepository
	store         storage.Storage
	models        inference.ModelClient

	analysisTimeout time.Duration
}

// NewRadiologistService constructs a RadiologistService.
func NewRadiologistService(
	users repository.UserRepository,
	scans repository.ScanRepository,
	predictions repository.PredictionRepository,
	reports repository.ReportRepository,
	feedback repository.FeedbackRepository,
	audit repository.AuditRepository,
	notifications repository.NotificationRepository,
	store storage.Storage,
	models inference.ModelClient,
	cfg config.InferenceConfig,
) RadiologistService {
	// Budget for download, inference call and artifact upload.
	timeout := time.Duration(cfg.TimeoutSec)*time.Second + 30*time.Second
	return &radiologistService{
		users:           users,
		scans:           scans,
		predictions:     predictions,
		reports:         reports,
		feedback:        feedback,
		audit:           audit,
		notifications:   notifications,
		store:           store,
		models:          models,
		analysisTimeout: timeout,
	}
}

// modelForScan routes a scan onto a classification model. Only chest X-rays
// (TB) and chest CTs (lung cancer) have models today.
func modelForScan(examinationType, bodyRegion string) (modelType, modelName string, ok bool) {
	if bodyRegion != "chest" {
		return "", "", false
	}
	switch examinationType {
	case "xray":
		return inference.ModelTB, "TB-ResNet50", true
	case "ct":
		return inference.ModelLungCancer, "LUNG_CANCER-ResNet50", true
	default:
		return "", "", false
	}
}

func (s *radiologistService) PendingScans(ctx context.Context) ([]WorklistItem, error) {
	rows, err := s.scans.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending scans: %w", err)
	}
	return worklistItems(rows), nil
}

func (s *radiologistService) CompletedScans(ctx context.Context) ([]WorklistItem, error) {
	rows, err := s.scans.ListCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completed scans: %w", err)
	}
	items := worklistItems(rows)
	draft := model.ReportStatusDraft
	for i := range items {
		if items[i].ReportStatus == nil {
			items[i].ReportStatus = &draft
		}
	}
	return items, nil
}

func (s *radiologistService) ScanDetail(ctx context.Context, scanID string) (*ReviewScanDetail, error) {
	detail, err := s.scans.FindDetail(ctx, scanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find scan: %w", err)
	}

	images, err := presignScanImages(ctx, s.scans, s.store, scanID, true)
	if err != nil {
		return nil, err
	}

	allergies := detail.Allergies
	if allergies == nil {
		allergies = []string{}
	}

	return &ReviewScanDetail{
		WorklistItem: WorklistItem{
			ID:                 detail.ID,
			ScanNumber:         detail.ScanNumber,
			PatientName:        detail.PatientName,
			PatientID:          detail.PatientID,
			ExaminationType:    model.DisplayExamType(detail.ExaminationType),
			BodyRegion:         model.DisplayCapitalize(detail.BodyRegion),
			UrgencyLevel:       model.DisplayCapitalize(detail.UrgencyLevel),
			Status:             detail.Status,
			ScanDate:           detail.ScanDate,
			CreatedAt:          detail.CreatedAt,
			PresentingSymptoms: detail.PresentingSymptoms.OrEmpty(),
			ClinicalNotes:      detail.ClinicalNotes,
		},
		AgeYears:           detail.AgeYears,
		Gender:             detail.Gender,
		BloodType:          detail.BloodType,
		Allergies:          allergies,
		CurrentMedications: detail.CurrentMedications.OrEmpty(),
		PreviousSurgeries:  detail.PreviousSurgeries.OrEmpty(),
		ImagingFacility:    detail.ImagingFacility,
		ReferringPhysician: detail.ReferringPhysician,
		Images:             images,
	}, nil
}

func (s *radiologistService) StartAnalysis(ctx context.Context, userID, scanID string) (*AnalysisStarted, error) {
	scan, err := s.scans.FindByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find scan: %w", err)
	}

	modelType, modelName, ok := modelForScan(scan.ExaminationType, scan.BodyRegion)
	if !ok {
		return nil, ErrNoModel
	}

	if err := s.scans.MarkInProgress(ctx, scanID); err != nil {
		return nil, fmt.Errorf("mark scan in progress: %w", err)
	}
	s.recordAudit(ctx, userID, model.AuditAnalysisStarted, "scan", scanID, map[string]any{"model": modelType})

	go s.runAnalysis(scan, modelType, modelName)

	return &AnalysisStarted{
		Message: "AI analysis started",
		ScanID:  scanID,
		Model:   modelType,
		Status:  model.ScanStatusInProgress,
	}, nil
}

// runAnalysis executes the inference workflow detached from the request:
// download the primary image, call the model, persist the prediction and
// Grad-CAM artifact, then advance the scan. Any failure reverts the scan to
// pending so it reappears in the worklist.
func (s *radiologistService) runAnalysis(scan *model.Scan, modelType, modelName string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.analysisTimeout)
	defer cancel()

	fail := func(stage string, err error) {
		logJSON(map[string]any{"level": "error", "msg": "ai analysis failed", "scan_id": scan.ID, "stage": stage, "error": err.Error()})
		// Fresh context: the analysis context may be the thing that expired.
		revertCtx, revertCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer revertCancel()
		if revertErr := s.scans.RevertToPending(revertCtx, scan.ID); revertErr != nil {
			logJSON(map[string]any{"level": "error", "msg": "revert to pending failed", "scan_id": scan.ID, "error": revertErr.Error()})
		}
	}

	img, err := s.scans.FindPrimaryImage(ctx, scan.ID)
	if err != nil {
		fail("find primary image", err)
		return
	}

	obj, _, err := s.store.Get(ctx, img.ImagePath)
	if err != nil {
		fail("download image", err)
		return
	}
	defer obj.Close()

	pred, gradcam, err := s.models.Predict(ctx, modelType, obj)
	if err != nil {
		fail("model inference", err)
		return
	}

	stored, err := s.predictions.Create(ctx, &model.AIPrediction{
		ID:                 uuid.NewString(),
		ScanID:             scan.ID,
		ModelName:          modelName,
		ModelVersion:       "v1.0",
		PredictedClass:     model.NormalizeDiagnosis(pred.PredictedClass),
		ConfidenceScore:    pred.Confidence,
		ClassProbabilities: pred.ClassProbabilities,
	})
	if err != nil {
		fail("store prediction", err)
		return
	}

	if len(gradcam) > 0 {
		key := fmt.Sprintf("scans/%s/%s/gradcam/%s_overlay.jpg", scan.PatientProfileID, scan.ID, stored.ID)
		if _, err := s.store.Put(ctx, key, bytes.NewReader(gradcam), storage.PutObjectOptions{
			Size:        int64(len(gradcam)),
			ContentType: "image/jpeg",
		}); err != nil {
			fail("upload gradcam", err)
			return
		}
		if err := s.predictions.CreateGradcam(ctx, &model.GradcamOutput{
			AIPredictionID: stored.ID,
			ScanImageID:    img.ID,
			OverlayPath:    &key,
			TargetClass:    stored.PredictedClass,
		}); err != nil {
			fail("store gradcam", err)
			return
		}
	}

	if err := s.scans.MarkAIAnalyzed(ctx, scan.ID); err != nil {
		fail("mark analyzed", err)
		return
	}
	logJSON(map[string]any{"level": "info", "msg": "ai analysis completed", "scan_id": scan.ID, "predicted_class": stored.PredictedClass})
}

func (s *radiologistService) AIResults(ctx context.Context, scanID string) (*AIResults, error) {
	pred, err := s.predictions.LatestByScan(ctx, scanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoResults
		}
		return nil, fmt.Errorf("find prediction: %w", err)
	}

	out := &AIResults{
		PredictionID:       pred.ID,
		PredictedClass:     pred.PredictedClass,
		Confidence:         pred.ConfidenceScore,
		ClassProbabilities: pred.ClassProbabilities,
		ModelName:          pred.ModelName,
		ModelVersion:       pred.ModelVersion,
		InferenceTimestamp: pred.InferenceTimestamp,
	}

	gradcam, err := s.predictions.LatestGradcamByPrediction(ctx, pred.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find gradcam: %w", err)
	}
	if gradcam != nil && gradcam.OverlayPath != nil {
		if url, err := s.store.PresignGet(ctx, *gradcam.OverlayPath, presignExpiry); err == nil {
			out.GradcamURL = &url
		} else {
			logJSON(map[string]any{"level": "warn", "msg": "presign gradcam failed", "scan_id": scanID, "error": err.Error()})
		}
	}

	if img, err := s.scans.FindPrimaryImage(ctx, scanID); err == nil {
		if url, err := s.store.PresignGet(ctx, img.ImagePath, presignExpiry); err == nil {
			out.OriginalImageURL = &url
		}
	}
	return out, nil
}

func (s *radiologistService) DraftReport(ctx context.Context, userID, scanID string) (*model.ReportDetail, error) {
	detail, err := s.reports.LatestDetailByScan(ctx, scanID, userID)
	if err == nil {
		return s.presentReport(ctx, userID, detail), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find report: %w", err)
	}

	scan, err := s.scans.FindByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find scan: %w", err)
	}

	// Without a prediction the class matches no diagnosis template and the
	// draft falls through to the routine screening one.
	predictedClass := ""
	if pred, err := s.predictions.LatestByScan(ctx, scanID); err == nil {
		predictedClass = pred.PredictedClass
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find prediction: %w", err)
	}

	tmpl := reportTemplate(scan.ExaminationType, predictedClass)
	_, err = s.reports.Create(ctx, &model.Report{
		ID:                 uuid.NewString(),
		ScanID:             scanID,
		ReportNumber:       "RPT-" + scan.ScanNumber,
		ReportType:         model.ReportTypePreliminaryAI,
		ReportStatus:       model.ReportStatusDraft,
		ReportTitle:        tmpl.Title,
		ClinicalIndication: &tmpl.Indication,
		Technique:          &tmpl.Technique,
		Findings:           &tmpl.Findings,
		Impression:         &tmpl.Impression,
		Recommendations:    &tmpl.Recommendations,
	})
	if err != nil {
		return nil, fmt.Errorf("create draft report: %w", err)
	}

	detail, err = s.reports.LatestDetailByScan(ctx, scanID, userID)
	if err != nil {
		return nil, fmt.Errorf("reload draft report: %w", err)
	}
	return s.presentReport(ctx, userID, detail), nil
}

// presentReport display-cases enums and fills the signing radiologist name
// from the caller's account when the report carries none.
func (s *radiologistService) presentReport(ctx context.Context, userID string, detail *model.ReportDetail) *model.ReportDetail {
	detail.ExaminationType = model.DisplayExamType(detail.ExaminationType)
	detail.BodyRegion = model.DisplayCapitalize(detail.BodyRegion)
	if detail.RadiologistName == nil {
		if user, err := s.users.FindByID(ctx, userID); err == nil {
			name := "Dr. " + user.FullName()
			detail.RadiologistName = &name
		}
	}
	return detail
}

func (s *radiologistService) SubmitFeedback(ctx context.Context, userID, scanID string, req *FeedbackRequest) (*model.RadiologistFeedback, error) {
	if err := validateFeedback(req); err != nil {
		return nil, err
	}

	if _, err := s.scans.FindByID(ctx, scanID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find scan: %w", err)
	}

	profile, err := s.users.FindRadiologistProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("find radiologist profile: %w", err)
	}

	var aiDiagnosis *string
	if pred, err := s.predictions.LatestByScan(ctx, scanID); err == nil {
		aiDiagnosis = &pred.PredictedClass
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find prediction: %w", err)
	}

	stored, err := s.feedback.Create(ctx, &model.RadiologistFeedback{
		ID:                    uuid.NewString(),
		ScanID:                scanID,
		RadiologistProfileID:  profile.ID,
		FeedbackType:          req.FeedbackType,
		AIDiagnosis:           aiDiagnosis,
		RadiologistDiagnosis:  model.NormalizeDiagnosis(req.RadiologistDiagnosis),
		ClinicalNotes:         req.ClinicalNotes,
		DisagreementReason:    req.DisagreementReason,
		AdditionalFindings:    req.AdditionalFindings,
		RadiologistConfidence: req.ConfidenceLevel,
		ImageQualityRating:    req.ImageQualityRating,
	})
	if err != nil {
		return nil, fmt.Errorf("store feedback: %w", err)
	}

	if err := s.scans.MarkCompleted(ctx, scanID); err != nil {
		return nil, fmt.Errorf("complete scan: %w", err)
	}
	s.recordAudit(ctx, userID, model.AuditFeedbackSubmitted, "scan", scanID, map[string]any{
		"feedback_type": stored.FeedbackType,
		"diagnosis":     stored.RadiologistDiagnosis,
	})
	return stored, nil
}

func validateFeedback(req *FeedbackRequest) error {
	switch req.FeedbackType {
	case model.FeedbackAccept, model.FeedbackPartialOverride, model.FeedbackFullOverride, model.FeedbackReject:
	default:
		return fmt.Errorf("%w: unknown feedback_type %q", ErrValidation, req.FeedbackType)
	}
	if strings.TrimSpace(req.RadiologistDiagnosis) == "" {
		return fmt.Errorf("%w: radiologist_diagnosis is required", ErrValidation)
	}
	if req.ConfidenceLevel != nil && (*req.ConfidenceLevel < 0 || *req.ConfidenceLevel > 1) {
		return fmt.Errorf("%w: confidence_level must be between 0 and 1", ErrValidation)
	}
	if req.ImageQualityRating != nil && (*req.ImageQualityRating < 1 || *req.ImageQualityRating > 5) {
		return fmt.Errorf("%w: image_quality_rating must be between 1 and 5", ErrValidation)
	}
	return nil
}

func (s *radiologistService) UpdateReport(ctx context.Context, userID, reportID string, upd *model.ReportUpdate) error {
	fields := upd.Fields()
	if len(fields) == 0 {
		return ErrNoFields
	}
	if err := s.reports.Update(ctx, reportID, fields); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update report: %w", err)
	}
	return nil
}

func (s *radiologistService) PublishReport(ctx context.Context, userID, reportID string) error {
	if err := s.reports.Publish(ctx, reportID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("publish report: %w", err)
	}
	s.recordAudit(ctx, userID, model.AuditReportPublished, "report", reportID, nil)

	patientUserID, err := s.reports.FindPatientUserID(ctx, reportID)
	if err != nil {
		logJSON(map[string]any{"level": "warn", "msg": "resolve report patient failed", "report_id": reportID, "error": err.Error()})
		return nil
	}
	if err := s.notifications.Enqueue(ctx, &model.Notification{
		UserID: patientUserID,
		Type:   "report_published",
		Title:  "New report available",
		Body:   "A diagnostic report for one of your scans has been published.",
	}); err != nil {
		logJSON(map[string]any{"level": "warn", "msg": "enqueue notification failed", "report_id": reportID, "error": err.Error()})
	}
	return nil
}

func (s *radiologistService) UnpublishReport(ctx context.Context, userID, reportID string) error {
	status, err := s.reports.FindStatus(ctx, reportID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("find report status: %w", err)
	}
	if status != model.ReportStatusPublished {
		return ErrNotPublished
	}
	if err := s.reports.Unpublish(ctx, reportID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("unpublish report: %w", err)
	}
	s.recordAudit(ctx, userID, model.AuditReportUnpublished, "report", reportID, nil)
	return nil
}

func (s *radiologistService) Profile(ctx context.Context, userID string) (*RadiologistProfileView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	view := &RadiologistProfileView{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
	}

	profile, err := s.users.FindRadiologistProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("find radiologist profile: %w", err)
	}

	view.LicenseNumber = &profile.LicenseNumber
	view.Specialization = profile.Specialization
	view.YearsOfExperience = profile.YearsOfExperience
	view.Institution = profile.Institution
	return view, nil
}

func (s *radiologistService) recordAudit(ctx context.Context, userID, action, entityType, entityID string, detail map[string]any) {
	entry := &model.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}
	if err := s.audit.Insert(ctx, entry); err != nil {
		logJSON(map[string]any{"level": "warn", "msg": "audit write failed", "action": action, "error": err.Error()})
	}
}

func worklistItems(rows []model.WorklistScan) []WorklistItem {
	items := make([]WorklistItem, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		items = append(items, WorklistItem{
			ID:                 r.ID,
			ScanNumber:         r.ScanNumber,
			PatientName:        r.PatientName,
			PatientID:          r.PatientID,
			ExaminationType:    model.DisplayExamType(r.ExaminationType),
			BodyRegion:         model.DisplayCapitalize(r.BodyRegion),
			UrgencyLevel:       model.DisplayCapitalize(r.UrgencyLevel),
			Status:             r.Status,
			ScanDate:           r.ScanDate,
			CreatedAt:          r.CreatedAt,
			PresentingSymptoms: r.PresentingSymptoms.OrEmpty(),
			ClinicalNotes:      r.ClinicalNotes,
			ReportStatus:       r.ReportStatus,
		})
	}
	return items
}
