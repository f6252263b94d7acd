package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"medscanapi/internal/http/middleware"
	"medscanapi/internal/model"
	"medscanapi/internal/service"
)

// PendingScans lists unreviewed scans, most urgent first.
//
// @Summary Pending worklist
// @Tags radiologist
// @Produce json
// @Success 200 {array} service.WorklistItem
// @Router /api/radiologist/scans/pending [get]
func PendingScans(svc service.RadiologistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.PendingScans(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// CompletedScans lists reviewed scans with their report status.
//
// @Summary Completed worklist
// @Tags radiologist
// @Produce json
// @Success 200 {array} service.WorklistItem
// @Router /api/radiologist/scans/completed [get]
func CompletedScans(svc service.RadiologistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.CompletedScans(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// ReviewScanDetail returns the full scan view with patient medical context.
//
// @Summary Scan detail for review
// @Tags radiologist
// @Produce json
// @Param id path string true "Scan ID"
// @Success 200 {object} service.ReviewScanDetail
// @Failure 404 {object} errorPayload
// @Router /api/radiologist/scans/{id} [get]
func ReviewScanDetail(svc service.RadiologistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		detail, err := svc.ScanDetail(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(detail)
	}
}

// StartAnalysis kicks off the background AI analysis of a scan.
//
// @Summary Start AI analysis
// @Tags radiologist
// @Produce json
// @Param id path string true "Scan ID"
// @Success 202 {object} service.AnalysisStarted
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/radiologist/scans/{id}/analyze [post]
func StartAnalysis(svc service.RadiologistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		started, err := svc.StartAnalysis(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(started)
	}
}

// AIResults returns the latest stored prediction for a scan.
//
// @Summary AI analysis results
// @Tags radiologist
// @Produce json
// @Param id path string true "Scan ID"
// @Success 200 {object} service.AIResults
// @Failure 404 {object} errorPayload
// @Router /api/radiologist/scans/{id}/ai-results [get]
func AIResults(svc service.RadiologistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		results, err := svc.AIResults(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(results)
	}
}

// DraftReport returns the scan's report, creating a prefilled draft on first
// access.
//
// @Summary Draft report
// @Tags radiologist
// @Produce json
// @Param id path string true "Scan ID"
// @Success 200 {object} model.ReportDetail
// @Failure 404 {object} errorPayload
// @Router /api/radiologist/scans/{id}/draft-report [get]
func DraftReport(svc service.RadiologistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		report, err := svc.DraftReport(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(report)
	}
}

// SubmitFeedback records the radiologist's verdict and completes the scan.
//
// @Summary Submit feedback
// @Tags radiologist
// @Accept json
// @Produce json
// @Param id path string true "Scan ID"
// @Param feedback body service.FeedbackRequest true "Feedback"
// @Success 201 {object} model.RadiologistFeedback
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/radiologist/scans/{id}/feedback [post]
func SubmitFeedback(svc service.RadiologistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req service.FeedbackRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		stored, err := svc.SubmitFeedback(c.UserContext(), middleware.UserID(c), id, &req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(stored)
	}
}

// UpdateReport applies edits to a report's sections.
//
// @Summary Update report
// @Tags radiologist
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param update body model.ReportUpdate true "Sections to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/radiologist/reports/{id} [put]
func UpdateReport(svc service.RadiologistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var upd model.ReportUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.UpdateReport(c.UserContext(), middleware.UserID(c), id, &upd); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Report updated successfully"})
	}
}

// PublishReport makes a report visible to its patient.
//
// @Summary Publish report
// @Tags radiologist
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Router /api/radiologist/reports/{id}/publish [post]
func PublishReport(svc service.RadiologistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.PublishReport(c.UserContext(), middleware.UserID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Report published successfully"})
	}
}

// UnpublishReport retracts a published report back to draft.
//
// @Summary Unpublish report
// @Tags radiologist
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/radiologist/reports/{id}/unpublish [post]
func UnpublishReport(svc service.RadiologistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.UnpublishReport(c.UserContext(), middleware.UserID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Report unpublished successfully"})
	}
}

// RadiologistProfile returns the caller's account and credentials.
//
// @Summary Own profile
// @Tags radiologist
// @Produce json
// @Success 200 {object} service.RadiologistProfileView
// @Failure 404 {object} errorPayload
// @Router /api/radiologist/profile [get]
func RadiologistProfile(svc service.RadiologistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := svc.Profile(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(view)
	}
}
