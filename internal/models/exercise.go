package models

type Exercise struct {
	ExerciseID  int64   `json:"exercise_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// WorkoutExercise is an exercise prescription (sets/reps/rest) attached to
// the trainer's exercise pool.
type WorkoutExercise struct {
	WorkoutExerciseID int64   `json:"workout_exercise_id"`
	ExerciseID        int64   `json:"exercise_id"`
	Sets              int     `json:"sets"`
	Reps              int     `json:"reps"`
	RestPeriod        *int    `json:"rest_period"`
	ExerciseName      string  `json:"exercise_name"`
	Category          *string `json:"category"`
}
