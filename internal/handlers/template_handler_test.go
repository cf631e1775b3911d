package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/ranya1958/FitFlow/internal/models"
	"github.com/ranya1958/FitFlow/internal/repository"
)

type stubTemplateStore struct {
	templates     []models.WorkoutTemplate
	listErr       error
	createID      int64
	createErr     error
	updateErr     error
	deleteErr     error
	lastTrainerID int64
	lastCreate    repository.CreateTemplateInput
	lastWorkoutID int64
	lastPayload   map[string]any
}

func (s *stubTemplateStore) ListByTrainer(_ context.Context, trainerID int64) ([]models.WorkoutTemplate, error) {
	s.lastTrainerID = trainerID
	return s.templates, s.listErr
}

func (s *stubTemplateStore) Create(_ context.Context, trainerID int64, input repository.CreateTemplateInput) (int64, error) {
	s.lastTrainerID = trainerID
	s.lastCreate = input
	return s.createID, s.createErr
}

func (s *stubTemplateStore) UpdateFields(_ context.Context, workoutID int64, payload map[string]any) error {
	s.lastWorkoutID = workoutID
	s.lastPayload = payload
	return s.updateErr
}

func (s *stubTemplateStore) Delete(_ context.Context, workoutID int64) error {
	s.lastWorkoutID = workoutID
	return s.deleteErr
}

func newTemplateApp() (*fiber.App, *stubTemplateStore) {
	store := &stubTemplateStore{}
	handler := NewTemplateHandler(store)

	app := fiber.New()
	templates := app.Group("/trainer_templates")
	templates.Get("/workout_session_template/:trainer_id", handler.ListTemplates)
	templates.Post("/workout_session_template/:trainer_id", handler.CreateTemplate)
	templates.Put("/workout_session_template/:workout_id", handler.UpdateTemplate)
	templates.Delete("/workout_session_template/:workout_id", handler.DeleteTemplate)
	return app, store
}

func TestCreateTemplateForwardsTrainerAndFields(t *testing.T) {
	app, store := newTemplateApp()
	store.createID = 14

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/trainer_templates/workout_session_template/3", map[string]any{
		"name":             "Push Day",
		"difficulty":       "Hard",
		"duration_minutes": 60,
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["workout_id"] != float64(14) {
		t.Fatalf("expected workout_id 14, got %v", body["workout_id"])
	}
	if store.lastTrainerID != 3 {
		t.Fatalf("expected trainer id 3, got %d", store.lastTrainerID)
	}
	if store.lastCreate.Name != "Push Day" || store.lastCreate.Difficulty != "Hard" {
		t.Fatalf("unexpected create input: %+v", store.lastCreate)
	}
	if store.lastCreate.DurationMinutes == nil || *store.lastCreate.DurationMinutes != 60 {
		t.Fatalf("unexpected duration: %+v", store.lastCreate.DurationMinutes)
	}
	if store.lastCreate.Description != nil {
		t.Fatalf("expected absent description to stay nil")
	}
}

func TestCreateTemplateRequiresDifficulty(t *testing.T) {
	app, _ := newTemplateApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/trainer_templates/workout_session_template/3", map[string]any{
		"name": "Push Day",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "Missing required field: difficulty" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestUpdateTemplateMissingRowIsNotFound(t *testing.T) {
	app, store := newTemplateApp()
	store.updateErr = pgx.ErrNoRows

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/trainer_templates/workout_session_template/999", map[string]any{
		"name": "Pull Day",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "Template not found" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestDeleteTemplateForwardsID(t *testing.T) {
	app, store := newTemplateApp()

	req := httptest.NewRequest(http.MethodDelete, "/trainer_templates/workout_session_template/14", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastWorkoutID != 14 {
		t.Fatalf("expected workout id 14, got %d", store.lastWorkoutID)
	}
}
