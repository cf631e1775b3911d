package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ranya1958/FitFlow/internal/models"
)

type trainerLogStore interface {
	ListCompletedWithClients(ctx context.Context) ([]models.ClientWorkoutLog, error)
	CompletionStats(ctx context.Context, clientID int64) (total, completed int64, err error)
	PersonalRecords(ctx context.Context, clientID int64) ([]models.PersonalRecord, error)
}

// TrainerLogHandler serves the trainer's view over client workout logs.
type TrainerLogHandler struct {
	logs trainerLogStore
}

func NewTrainerLogHandler(logs trainerLogStore) *TrainerLogHandler {
	return &TrainerLogHandler{logs: logs}
}

func (h *TrainerLogHandler) GetCompletedLogs(c *fiber.Ctx) error {
	logs, err := h.logs.ListCompletedWithClients(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(logs)
}

// GetClientProgress combines completion counts with the client's PR history.
// A client with no sessions reports a zero consistency rate rather than an
// error.
func (h *TrainerLogHandler) GetClientProgress(c *fiber.Ctx) error {
	clientID, err := parseID(c, "client_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client id"})
	}

	total, completed, err := h.logs.CompletionStats(c.Context(), clientID)
	if err != nil {
		return respondError(c, err, "")
	}

	prs, err := h.logs.PersonalRecords(c.Context(), clientID)
	if err != nil {
		return respondError(c, err, "")
	}

	progress := models.ClientProgress{
		TotalSessions:     total,
		CompletedSessions: completed,
		PRs:               prs,
	}
	if total > 0 {
		progress.ConsistencyRate = float64(completed) / float64(total)
	}
	return c.JSON(progress)
}
