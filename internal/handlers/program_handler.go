package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ranya1958/FitFlow/internal/models"
	"github.com/ranya1958/FitFlow/internal/repository"
)

var assignProgramRequired = []string{"client_id", "workout_id", "name"}

type programStore interface {
	ListByTrainer(ctx context.Context, trainerID int64) ([]models.ClientProgram, error)
	Create(ctx context.Context, trainerID int64, input repository.CreateProgramInput) (int64, error)
	UpdateFields(ctx context.Context, programID int64, payload map[string]any) error
	Delete(ctx context.Context, programID int64) error
}

type ProgramHandler struct {
	programs programStore
}

func NewProgramHandler(programs programStore) *ProgramHandler {
	return &ProgramHandler{programs: programs}
}

func (h *ProgramHandler) ListPrograms(c *fiber.Ctx) error {
	trainerID, err := parseID(c, "trainer_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer id"})
	}

	programs, err := h.programs.ListByTrainer(c.Context(), trainerID)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(programs)
}

func (h *ProgramHandler) AssignProgram(c *fiber.Ctx) error {
	trainerID, err := parseID(c, "trainer_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer id"})
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}
	if missing := requireFields(payload, assignProgramRequired); missing != nil {
		return missingField(c, missing)
	}

	programID, err := h.programs.Create(c.Context(), trainerID, repository.CreateProgramInput{
		WorkoutID:   intField(payload, "workout_id"),
		ClientID:    intField(payload, "client_id"),
		Name:        stringField(payload, "name"),
		Description: optionalString(payload, "description"),
	})
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Program assigned", "program_id": programID})
}

func (h *ProgramHandler) UpdateProgram(c *fiber.Ctx) error {
	programID, err := parseID(c, "program_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	if err := h.programs.UpdateFields(c.Context(), programID, payload); err != nil {
		return respondError(c, err, "Program not found")
	}
	return c.JSON(fiber.Map{"message": "Program updated"})
}

func (h *ProgramHandler) DeleteProgram(c *fiber.Ctx) error {
	programID, err := parseID(c, "program_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid program id"})
	}

	if err := h.programs.Delete(c.Context(), programID); err != nil {
		return respondError(c, err, "Program not found")
	}
	return c.JSON(fiber.Map{"message": "Program removed"})
}
