package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medscanapi/internal/auth"
	"medscanapi/internal/http/middleware"
	"medscanapi/internal/inference"
	"medscanapi/internal/model"
	"medscanapi/internal/service"
	svcMocks "medscanapi/internal/service/mocks"
)

var testJWTSecret = []byte("handler-test-secret")

const testScanID = "6f1c8a2e-4b3d-4e5f-9a0b-1c2d3e4f5a6b"

type testServices struct {
	auth        *svcMocks.MockAuthService
	patient     *svcMocks.MockPatientService
	radiologist *svcMocks.MockRadiologistService
	chat        *svcMocks.MockChatService
}

func newTestApp(t *testing.T) (*fiber.App, *testServices) {
	t.Helper()
	db, _, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ts := &testServices{
		auth:        new(svcMocks.MockAuthService),
		patient:     new(svcMocks.MockPatientService),
		radiologist: new(svcMocks.MockRadiologistService),
		chat:        new(svcMocks.MockChatService),
	}
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, db, testJWTSecret, Services{
		Auth:        ts.auth,
		Patient:     ts.patient,
		Radiologist: ts.radiologist,
		Chat:        ts.chat,
	})
	return app, ts
}

func bearerToken(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := auth.Sign(testJWTSecret, userID, role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func decodeError(t *testing.T, body io.Reader) errorPayload {
	t.Helper()
	var payload errorPayload
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload
}

func TestHealthEndpoints(t *testing.T) {
	t.Run("ready when database answers", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		dbMock.ExpectPing()

		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
		app.Get("/health", HealthCheck(db))

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unavailable when ping fails", func(t *testing.T) {
		db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		dbMock.ExpectPing().WillReturnError(assert.AnError)

		app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
		app.Get("/health", HealthCheck(db))

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("liveness", func(t *testing.T) {
		app := fiber.New()
		app.Get("/healthz", LivenessProbe())
		resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.auth.On("Login", mock.Anything, "pat@example.org", "secret123").Return(&service.LoginResult{
			Token:     "signed-token",
			TokenType: "bearer",
			ExpiresIn: 86400,
			User:      &model.User{ID: "user-1", Role: model.RolePatient},
		}, nil).Once()

		body := bytes.NewBufferString(`{"email":"pat@example.org","password":"secret123"}`)
		req := httptest.NewRequest("POST", "/api/auth/login", body)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var result service.LoginResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, "bearer", result.TokenType)
	})

	t.Run("bad credentials", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.auth.On("Login", mock.Anything, "pat@example.org", "wrong").
			Return(nil, service.ErrInvalidCredentials).Once()

		body := bytes.NewBufferString(`{"email":"pat@example.org","password":"wrong"}`)
		req := httptest.NewRequest("POST", "/api/auth/login", body)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("missing credentials", func(t *testing.T) {
		app, _ := newTestApp(t)
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(`{"email":"x@y.z"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_CREDENTIALS", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		app, _ := newTestApp(t)
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString("{not json"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp.Body).Error.Code)
	})
}

func TestRouteAuthorization(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		app, _ := newTestApp(t)
		resp, err := app.Test(httptest.NewRequest("GET", "/api/patient/scans", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		app, _ := newTestApp(t)
		req := httptest.NewRequest("GET", "/api/radiologist/scans/pending", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, "user-1", model.RolePatient))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "FORBIDDEN", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("me resolves the token subject", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.auth.On("CurrentUser", mock.Anything, "user-1").Return(&model.User{ID: "user-1"}, nil).Once()

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, "user-1", model.RolePatient))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		ts.auth.AssertExpectations(t)
	})
}

func TestPatientEndpoints(t *testing.T) {
	token := func(t *testing.T) string { return bearerToken(t, "user-1", model.RolePatient) }

	t.Run("scans list", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.patient.On("Scans", mock.Anything, "user-1").Return([]service.PatientScanItem{
			{ID: testScanID, ExaminationType: "X-ray", BodyRegion: "Chest"},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/api/patient/scans", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var items []service.PatientScanItem
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
		require.Len(t, items, 1)
		assert.Equal(t, "X-ray", items[0].ExaminationType)
	})

	t.Run("invalid scan id", func(t *testing.T) {
		app, _ := newTestApp(t)
		req := httptest.NewRequest("GET", "/api/patient/scans/not-a-uuid", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("scan not owned", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.patient.On("ScanDetail", mock.Anything, "user-1", testScanID).
			Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest("GET", "/api/patient/scans/"+testScanID, nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp.Body).Error.Code)
	})
}

func TestRadiologistEndpoints(t *testing.T) {
	token := func(t *testing.T) string { return bearerToken(t, "rad-1", model.RoleRadiologist) }

	t.Run("start analysis accepted", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.radiologist.On("StartAnalysis", mock.Anything, "rad-1", testScanID).Return(&service.AnalysisStarted{
			Message: "AI analysis started",
			ScanID:  testScanID,
			Model:   inference.ModelTB,
			Status:  model.ScanStatusInProgress,
		}, nil).Once()

		req := httptest.NewRequest("POST", "/api/radiologist/scans/"+testScanID+"/analyze", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	})

	t.Run("no model for scan", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.radiologist.On("StartAnalysis", mock.Anything, "rad-1", testScanID).
			Return(nil, service.ErrNoModel).Once()

		req := httptest.NewRequest("POST", "/api/radiologist/scans/"+testScanID+"/analyze", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "NO_MODEL", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("ai results pending", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.radiologist.On("AIResults", mock.Anything, testScanID).
			Return(nil, service.ErrNoResults).Once()

		req := httptest.NewRequest("GET", "/api/radiologist/scans/"+testScanID+"/ai-results", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NO_RESULTS", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("feedback created", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.radiologist.On("SubmitFeedback", mock.Anything, "rad-1", testScanID,
			mock.MatchedBy(func(req *service.FeedbackRequest) bool {
				return req.FeedbackType == model.FeedbackAccept && req.RadiologistDiagnosis == "tuberculosis"
			})).Return(&model.RadiologistFeedback{ID: "fb-1"}, nil).Once()

		body := bytes.NewBufferString(`{"feedback_type":"accept","radiologist_diagnosis":"tuberculosis"}`)
		req := httptest.NewRequest("POST", "/api/radiologist/scans/"+testScanID+"/feedback", body)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, token(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("feedback validation error", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.radiologist.On("SubmitFeedback", mock.Anything, "rad-1", testScanID, mock.Anything).
			Return(nil, service.ErrValidation).Once()

		body := bytes.NewBufferString(`{"feedback_type":"maybe","radiologist_diagnosis":"tb"}`)
		req := httptest.NewRequest("POST", "/api/radiologist/scans/"+testScanID+"/feedback", body)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, token(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("unpublish requires published", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.radiologist.On("UnpublishReport", mock.Anything, "rad-1", testScanID).
			Return(service.ErrNotPublished).Once()

		req := httptest.NewRequest("POST", "/api/radiologist/reports/"+testScanID+"/unpublish", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "NOT_PUBLISHED", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("worklist literal routes win over :id", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.radiologist.On("PendingScans", mock.Anything).Return([]service.WorklistItem{}, nil).Once()

		req := httptest.NewRequest("GET", "/api/radiologist/scans/pending", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		ts.radiologist.AssertNotCalled(t, "ScanDetail", mock.Anything, mock.Anything)
	})
}

func TestChatEndpoints(t *testing.T) {
	token := func(t *testing.T, role string) string { return bearerToken(t, "user-1", role) }

	t.Run("slow upstream maps to 504", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.chat.On("Chat", mock.Anything, "user-1", "what is TB?").
			Return(nil, inference.ErrRAGTimeout).Once()

		body := bytes.NewBufferString(`{"message":"what is TB?"}`)
		req := httptest.NewRequest("POST", "/api/rag/chat", body)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, token(t, model.RolePatient))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusGatewayTimeout, resp.StatusCode)
		assert.Equal(t, "UPSTREAM_TIMEOUT", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("async job accepted for both roles", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.chat.On("StartJob", "user-1", "what is TB?").Return(&service.ChatJobStarted{
			JobID:  testScanID,
			Status: service.ChatJobPending,
		}, nil).Twice()

		for _, role := range []string{model.RolePatient, model.RoleRadiologist} {
			body := bytes.NewBufferString(`{"message":"what is TB?"}`)
			req := httptest.NewRequest("POST", "/api/rag/chat/start", body)
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			req.Header.Set(fiber.HeaderAuthorization, token(t, role))

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusAccepted, resp.StatusCode, role)
		}
	})

	t.Run("job status for foreign job", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.chat.On("JobStatus", "user-1", testScanID).Return(nil, service.ErrJobForbidden).Once()

		req := httptest.NewRequest("GET", "/api/rag/chat/status/"+testScanID, nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t, model.RolePatient))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("job status invalid id", func(t *testing.T) {
		app, _ := newTestApp(t)
		req := httptest.NewRequest("GET", "/api/rag/chat/status/nope", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t, model.RolePatient))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp.Body).Error.Code)
	})

	t.Run("assistant health passthrough", func(t *testing.T) {
		app, ts := newTestApp(t)
		ts.chat.On("Health", mock.Anything).Return(&service.ChatHealth{
			Status: "healthy", Endpoint: "https://rag.example.org/query",
		}).Once()

		req := httptest.NewRequest("GET", "/api/rag/health", nil)
		req.Header.Set(fiber.HeaderAuthorization, token(t, model.RoleRadiologist))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var health service.ChatHealth
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		assert.Equal(t, "healthy", health.Status)
	})
}
