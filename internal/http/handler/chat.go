package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"medscanapi/internal/http/middleware"
	"medscanapi/internal/service"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Chat answers a question synchronously. Slow upstreams return 504 advising
// the async endpoint.
//
// @Summary Chat with the assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param message body chatRequest true "Question"
// @Success 200 {object} service.ChatAnswer
// @Failure 502 {object} errorPayload
// @Failure 504 {object} errorPayload
// @Router /api/rag/chat [post]
func Chat(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		answer, err := svc.Chat(c.UserContext(), middleware.UserID(c), req.Message)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(answer)
	}
}

// StartChatJob accepts a question for background processing.
//
// @Summary Start async chat job
// @Tags chat
// @Accept json
// @Produce json
// @Param message body chatRequest true "Question"
// @Success 202 {object} service.ChatJobStarted
// @Router /api/rag/chat/start [post]
func StartChatJob(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		started, err := svc.StartJob(middleware.UserID(c), req.Message)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(started)
	}
}

// ChatJobStatus reports the state of a background chat job.
//
// @Summary Chat job status
// @Tags chat
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} service.ChatJobStatus
// @Failure 404 {object} errorPayload
// @Router /api/rag/chat/status/{job_id} [get]
func ChatJobStatus(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		jobID := c.Params("job_id")
		if _, err := uuid.Parse(jobID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		status, err := svc.JobStatus(middleware.UserID(c), jobID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(status)
	}
}

// ChatHealth probes the upstream assistant endpoint.
//
// @Summary Assistant health
// @Tags chat
// @Produce json
// @Success 200 {object} service.ChatHealth
// @Router /api/rag/health [get]
func ChatHealth(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Health(c.UserContext()))
	}
}
