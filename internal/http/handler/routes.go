package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"medscanapi/internal/http/middleware"
	"medscanapi/internal/model"
	"medscanapi/internal/service"
)

// Services groups the injected services for route registration.
type Services struct {
	Auth        service.AuthService
	Patient     service.PatientService
	Radiologist service.RadiologistService
	Chat        service.ChatService
}

// RegisterRoutes attaches all HTTP routes. The portal groups sit behind the
// bearer-token middleware plus a role gate; health probes stay open.
func RegisterRoutes(app *fiber.App, db *sql.DB, jwtSecret []byte, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", Login(svcs.Auth))
	authGroup.Post("/logout", Logout())
	authGroup.Get("/me", middleware.Auth(jwtSecret), Me(svcs.Auth))

	patient := api.Group("/patient", middleware.Auth(jwtSecret), middleware.RequireRole(model.RolePatient))
	patient.Get("/scans", PatientScans(svcs.Patient))
	patient.Get("/scans/:id", PatientScanDetail(svcs.Patient))
	patient.Get("/reports", PatientReports(svcs.Patient))
	patient.Get("/reports/:id", PatientReportDetail(svcs.Patient))
	patient.Get("/profile", PatientProfile(svcs.Patient))

	radiologist := api.Group("/radiologist", middleware.Auth(jwtSecret), middleware.RequireRole(model.RoleRadiologist))
	radiologist.Get("/scans/pending", PendingScans(svcs.Radiologist))
	radiologist.Get("/scans/completed", CompletedScans(svcs.Radiologist))
	radiologist.Get("/scans/:id", ReviewScanDetail(svcs.Radiologist))
	radiologist.Post("/scans/:id/analyze", StartAnalysis(svcs.Radiologist))
	radiologist.Get("/scans/:id/ai-results", AIResults(svcs.Radiologist))
	radiologist.Get("/scans/:id/draft-report", DraftReport(svcs.Radiologist))
	radiologist.Post("/scans/:id/feedback", SubmitFeedback(svcs.Radiologist))
	radiologist.Put("/reports/:id", UpdateReport(svcs.Radiologist))
	radiologist.Post("/reports/:id/publish", PublishReport(svcs.Radiologist))
	radiologist.Post("/reports/:id/unpublish", UnpublishReport(svcs.Radiologist))
	radiologist.Get("/profile", RadiologistProfile(svcs.Radiologist))

	chat := api.Group("/rag", middleware.Auth(jwtSecret))
	chat.Post("/chat", Chat(svcs.Chat))
	chat.Post("/chat/start", StartChatJob(svcs.Chat))
	chat.Get("/chat/status/:job_id", ChatJobStatus(svcs.Chat))
	chat.Get("/health", ChatHealth(svcs.Chat))
}
