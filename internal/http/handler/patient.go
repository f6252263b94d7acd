package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"medscanapi/internal/http/middleware"
	"medscanapi/internal/service"
)

// PatientScans lists the caller's scans.
//
// @Summary List own scans
// @Tags patient
// @Produce json
// @Success 200 {array} service.PatientScanItem
// @Router /api/patient/scans [get]
func PatientScans(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Scans(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// PatientScanDetail returns one of the caller's scans with image links.
//
// @Summary Scan detail
// @Tags patient
// @Produce json
// @Param id path string true "Scan ID"
// @Success 200 {object} service.PatientScanDetail
// @Failure 404 {object} errorPayload
// @Router /api/patient/scans/{id} [get]
func PatientScanDetail(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		detail, err := svc.ScanDetail(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(detail)
	}
}

// PatientReports lists the caller's published reports.
//
// @Summary List own published reports
// @Tags patient
// @Produce json
// @Success 200 {array} model.PatientReport
// @Router /api/patient/reports [get]
func PatientReports(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reports, err := svc.Reports(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(reports)
	}
}

// PatientReportDetail returns one published report owned by the caller.
//
// @Summary Published report detail
// @Tags patient
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} model.ReportDetail
// @Failure 404 {object} errorPayload
// @Router /api/patient/reports/{id} [get]
func PatientReportDetail(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		detail, err := svc.ReportDetail(c.UserContext(), middleware.UserID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(detail)
	}
}

// PatientProfile returns the caller's account and medical profile.
//
// @Summary Own profile
// @Tags patient
// @Produce json
// @Success 200 {object} service.PatientProfileView
// @Router /api/patient/profile [get]
func PatientProfile(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := svc.Profile(c.UserContext(), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(view)
	}
}
