package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ranya1958/FitFlow/internal/models"
	"github.com/ranya1958/FitFlow/internal/repository"
)

var createWorkoutLogRequired = []string{"client_id", "workout_id", "date", "completion_status", "duration_minutes"}

type workoutLogStore interface {
	ListCompletedForClient(ctx context.Context, clientID int64, limit int) ([]models.CompletedLogEntry, error)
	Create(ctx context.Context, input repository.CreateWorkoutLogInput) (int64, error)
	UpdateFields(ctx context.Context, logID int64, payload map[string]any) error
	DeleteNotStarted(ctx context.Context, clientID int64) (int64, error)
	MonthlyCompletions(ctx context.Context, clientID int64) ([]models.MonthlyCompletion, error)
}

// WorkoutLogHandler serves the client-side workout log surface.
type WorkoutLogHandler struct {
	logs        workoutLogStore
	recentLimit int
}

func NewWorkoutLogHandler(logs workoutLogStore, recentLimit int) *WorkoutLogHandler {
	return &WorkoutLogHandler{logs: logs, recentLimit: recentLimit}
}

func (h *WorkoutLogHandler) GetWorkoutLogs(c *fiber.Ctx) error {
	clientID, err := clientIDQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "client_id is required"})
	}

	logs, err := h.logs.ListCompletedForClient(c.Context(), clientID, h.recentLimit)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(logs)
}

func (h *WorkoutLogHandler) CreateWorkoutLog(c *fiber.Ctx) error {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}
	if missing := requireFields(payload, createWorkoutLogRequired); missing != nil {
		return missingField(c, missing)
	}

	input := repository.CreateWorkoutLogInput{
		ClientID:         intField(payload, "client_id"),
		WorkoutID:        intField(payload, "workout_id"),
		WorkoutDate:      stringField(payload, "date"),
		CompletionStatus: stringField(payload, "completion_status"),
		DurationMinutes:  int(intField(payload, "duration_minutes")),
	}
	if notes := optionalString(payload, "notes"); notes != nil {
		input.Notes = *notes
	}

	logID, err := h.logs.Create(c.Context(), input)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Workout log created successfully", "log_id": logID})
}

func (h *WorkoutLogHandler) UpdateWorkoutLog(c *fiber.Ctx) error {
	logID, err := parseID(c, "log_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid log id"})
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	if err := h.logs.UpdateFields(c.Context(), logID, payload); err != nil {
		return respondError(c, err, "Workout log not found")
	}
	return c.JSON(fiber.Map{"message": "Workout log updated successfully"})
}

func (h *WorkoutLogHandler) DeleteIncompleteLogs(c *fiber.Ctx) error {
	clientID, err := clientIDQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "client_id is required"})
	}

	deleted, err := h.logs.DeleteNotStarted(c.Context(), clientID)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(fiber.Map{
		"message":      fmt.Sprintf("Deleted %d incomplete workout logs", deleted),
		"rows_deleted": deleted,
	})
}

func (h *WorkoutLogHandler) GetMonthlyCompletionRate(c *fiber.Ctx) error {
	clientID, err := clientIDQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "client_id is required"})
	}

	completions, err := h.logs.MonthlyCompletions(c.Context(), clientID)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(completions)
}

func clientIDQuery(c *fiber.Ctx) (int64, error) {
	clientID := int64(c.QueryInt("client_id"))
	if clientID <= 0 {
		return 0, fmt.Errorf("client_id is required")
	}
	return clientID, nil
}
