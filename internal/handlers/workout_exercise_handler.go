package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ranya1958/FitFlow/internal/models"
	"github.com/ranya1958/FitFlow/internal/repository"
)

var createWorkoutExerciseRequired = []string{"exercise_id", "sets", "reps"}

type workoutExerciseStore interface {
	List(ctx context.Context) ([]models.WorkoutExercise, error)
	Create(ctx context.Context, input repository.CreateWorkoutExerciseInput) (int64, error)
}

type WorkoutExerciseHandler struct {
	exercises workoutExerciseStore
}

func NewWorkoutExerciseHandler(exercises workoutExerciseStore) *WorkoutExerciseHandler {
	return &WorkoutExerciseHandler{exercises: exercises}
}

func (h *WorkoutExerciseHandler) ListWorkoutExercises(c *fiber.Ctx) error {
	exercises, err := h.exercises.List(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(exercises)
}

func (h *WorkoutExerciseHandler) CreateWorkoutExercise(c *fiber.Ctx) error {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}
	if missing := requireFields(payload, createWorkoutExerciseRequired); missing != nil {
		return missingField(c, missing)
	}

	workoutExerciseID, err := h.exercises.Create(c.Context(), repository.CreateWorkoutExerciseInput{
		ExerciseID: intField(payload, "exercise_id"),
		Sets:       int(intField(payload, "sets")),
		Reps:       int(intField(payload, "reps")),
		RestPeriod: optionalInt(payload, "rest_period"),
	})
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":             "Workout exercise created",
		"workout_exercise_id": workoutExerciseID,
	})
}
