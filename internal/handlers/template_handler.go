package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ranya1958/FitFlow/internal/models"
	"github.com/ranya1958/FitFlow/internal/repository"
)

var createTemplateRequired = []string{"name", "difficulty"}

type templateStore interface {
	ListByTrainer(ctx context.Context, trainerID int64) ([]models.WorkoutTemplate, error)
	Create(ctx context.Context, trainerID int64, input repository.CreateTemplateInput) (int64, error)
	UpdateFields(ctx context.Context, workoutID int64, payload map[string]any) error
	Delete(ctx context.Context, workoutID int64) error
}

type TemplateHandler struct {
	templates templateStore
}

func NewTemplateHandler(templates templateStore) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	trainerID, err := parseID(c, "trainer_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer id"})
	}

	templates, err := h.templates.ListByTrainer(c.Context(), trainerID)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(templates)
}

func (h *TemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	trainerID, err := parseID(c, "trainer_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer id"})
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}
	if missing := requireFields(payload, createTemplateRequired); missing != nil {
		return missingField(c, missing)
	}

	workoutID, err := h.templates.Create(c.Context(), trainerID, repository.CreateTemplateInput{
		Name:            stringField(payload, "name"),
		Description:     optionalString(payload, "description"),
		DurationMinutes: optionalInt(payload, "duration_minutes"),
		Difficulty:      stringField(payload, "difficulty"),
	})
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Template created", "workout_id": workoutID})
}

func (h *TemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	workoutID, err := parseID(c, "workout_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	if err := h.templates.UpdateFields(c.Context(), workoutID, payload); err != nil {
		return respondError(c, err, "Template not found")
	}
	return c.JSON(fiber.Map{"message": "Template updated"})
}

func (h *TemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	workoutID, err := parseID(c, "workout_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid workout id"})
	}

	if err := h.templates.Delete(c.Context(), workoutID); err != nil {
		return respondError(c, err, "Template not found")
	}
	return c.JSON(fiber.Map{"message": "Template deleted"})
}
