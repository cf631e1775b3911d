package repository

import (
	"context"

	"github.com/ranya1958/FitFlow/internal/models"
)

type CreateWorkoutExerciseInput struct {
	ExerciseID int64
	Sets       int
	Reps       int
	RestPeriod *int
}

type WorkoutExerciseRepository struct {
	db DBTX
}

func NewWorkoutExerciseRepository(db DBTX) *WorkoutExerciseRepository {
	return &WorkoutExerciseRepository{db: db}
}

func (r *WorkoutExerciseRepository) List(ctx context.Context) ([]models.WorkoutExercise, error) {
	query := `
		SELECT we.workout_exercise_id, we.exercise_id, e.name AS exercise_name, e.category,
		       we.sets, we.reps, we.rest_period
		FROM workout_exercises we
		JOIN exercises e ON we.exercise_id = e.exercise_id
		ORDER BY we.workout_exercise_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]models.WorkoutExercise, 0)
	for rows.Next() {
		var we models.WorkoutExercise
		if err := rows.Scan(
			&we.WorkoutExerciseID,
			&we.ExerciseID,
			&we.ExerciseName,
			&we.Category,
			&we.Sets,
			&we.Reps,
			&we.RestPeriod,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, we)
	}
	return exercises, rows.Err()
}

func (r *WorkoutExerciseRepository) Create(ctx context.Context, input CreateWorkoutExerciseInput) (int64, error) {
	query := `
		INSERT INTO workout_exercises (exercise_id, sets, reps, rest_period)
		VALUES ($1, $2, $3, $4)
		RETURNING workout_exercise_id
	`
	var workoutExerciseID int64
	err := r.db.QueryRow(ctx, query,
		input.ExerciseID,
		input.Sets,
		input.Reps,
		input.RestPeriod,
	).Scan(&workoutExerciseID)
	if err != nil {
		return 0, err
	}
	return workoutExerciseID, nil
}
