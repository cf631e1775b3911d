package models

import "time"

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

type WorkoutTemplate struct {
	WorkoutID       int64     `json:"workout_id"`
	TrainerID       int64     `json:"trainer_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	DurationMinutes *int      `json:"duration_minutes"`
	Difficulty      string    `json:"difficulty"`
	DateCreated     time.Time `json:"date_created"`
}

type ClientProgram struct {
	ProgramID   int64     `json:"program_id"`
	WorkoutID   int64     `json:"workout_id"`
	CreatedBy   int64     `json:"created_by"`
	ClientID    int64     `json:"client_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
