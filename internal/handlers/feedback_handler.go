package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ranya1958/FitFlow/internal/models"
)

var createFeedbackRequired = []string{"log_id", "comment"}

type feedbackStore interface {
	Create(ctx context.Context, trainerID, logID int64, comment string) (int64, error)
	ListByLog(ctx context.Context, logID int64) ([]models.Feedback, error)
	Delete(ctx context.Context, feedbackID int64) error
}

type FeedbackHandler struct {
	feedback feedbackStore
}

func NewFeedbackHandler(feedback feedbackStore) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

func (h *FeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	trainerID, err := parseID(c, "trainer_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer id"})
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}
	if missing := requireFields(payload, createFeedbackRequired); missing != nil {
		return missingField(c, missing)
	}

	feedbackID, err := h.feedback.Create(c.Context(), trainerID, intField(payload, "log_id"), stringField(payload, "comment"))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Feedback created", "feedback_id": feedbackID})
}

func (h *FeedbackHandler) GetFeedbackForLog(c *fiber.Ctx) error {
	logID, err := parseID(c, "log_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid log id"})
	}

	feedback, err := h.feedback.ListByLog(c.Context(), logID)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(feedback)
}

func (h *FeedbackHandler) DeleteFeedback(c *fiber.Ctx) error {
	feedbackID, err := parseID(c, "feedback_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid feedback id"})
	}

	if err := h.feedback.Delete(c.Context(), feedbackID); err != nil {
		return respondError(c, err, "Feedback not found")
	}
	return c.JSON(fiber.Map{"message": "Feedback deleted"})
}
