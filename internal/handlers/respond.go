package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/ranya1958/FitFlow/internal/repository"
)

// respondError maps a repository failure onto the uniform error envelope:
// 400 for an update with no recognized fields, 404 when an identifier-scoped
// statement touched no rows, and 500 with the data-access error text
// forwarded as-is for everything else.
func respondError(c *fiber.Ctx, err error, notFoundMessage string) error {
	switch {
	case errors.Is(err, repository.ErrNoFields):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No valid fields to update"})
	case errors.Is(err, pgx.ErrNoRows):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMessage})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
}

func missingField(c *fiber.Ctx, err *MissingFieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
