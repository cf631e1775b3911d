package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ranya1958/FitFlow/internal/models"
)

type analyticsStore interface {
	WeeklyDurations(ctx context.Context) ([]models.WeeklyDuration, error)
	ClientInfo(ctx context.Context) ([]models.ClientInfo, error)
	RecentMetrics(ctx context.Context) ([]models.RecentMetric, error)
	HealthProgression(ctx context.Context) ([]models.HealthProgressionPoint, error)
	ProgramCompletionRates(ctx context.Context) ([]models.ProgramCompletionRate, error)
	TemplateUsage(ctx context.Context) ([]models.TemplateUsage, error)
}

// AnalystHandler serves the health-analyst reports: fixed aggregate reads
// with no parameters beyond the query itself.
type AnalystHandler struct {
	analytics analyticsStore
}

func NewAnalystHandler(analytics analyticsStore) *AnalystHandler {
	return &AnalystHandler{analytics: analytics}
}

func (h *AnalystHandler) GetAverageWorkoutDuration(c *fiber.Ctx) error {
	durations, err := h.analytics.WeeklyDurations(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(durations)
}

func (h *AnalystHandler) GetClientInfo(c *fiber.Ctx) error {
	clients, err := h.analytics.ClientInfo(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(clients)
}

func (h *AnalystHandler) GetRecentHealthMetrics(c *fiber.Ctx) error {
	metrics, err := h.analytics.RecentMetrics(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(metrics)
}

func (h *AnalystHandler) GetHealthProgression(c *fiber.Ctx) error {
	points, err := h.analytics.HealthProgression(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(points)
}

func (h *AnalystHandler) GetProgramCompletionRates(c *fiber.Ctx) error {
	rates, err := h.analytics.ProgramCompletionRates(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(rates)
}

func (h *AnalystHandler) GetTemplateUsage(c *fiber.Ctx) error {
	usage, err := h.analytics.TemplateUsage(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(usage)
}
