package models

import "time"

const (
	CompletionCompleted  = "completed"
	CompletionPartial    = "partial"
	CompletionNotStarted = "not_started"
)

type WorkoutLog struct {
	LogID            int64     `json:"log_id"`
	ClientID         int64     `json:"client_id"`
	WorkoutID        int64     `json:"workout_id"`
	WorkoutDate      time.Time `json:"workout_date"`
	CompletionStatus string    `json:"completion_status"`
	DurationMinutes  *int      `json:"duration_minutes"`
	Notes            string    `json:"notes"`
	PR               *string   `json:"pr"`
}

// CompletedLogEntry is the client-facing history row, joined with the
// template name.
type CompletedLogEntry struct {
	LogID            int64     `json:"log_id"`
	WorkoutDate      time.Time `json:"workout_date"`
	WorkoutName      string    `json:"workout_name"`
	CompletionStatus string    `json:"completion_status"`
	DurationMinutes  *int      `json:"duration_minutes"`
}

// ClientWorkoutLog is the trainer-facing log row, joined with client names.
type ClientWorkoutLog struct {
	WorkoutLog
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type PersonalRecord struct {
	WorkoutDate time.Time `json:"workout_date"`
	PR          string    `json:"pr"`
}

type ClientProgress struct {
	TotalSessions     int64            `json:"total_sessions"`
	CompletedSessions int64            `json:"completed_sessions"`
	ConsistencyRate   float64          `json:"consistency_rate"`
	PRs               []PersonalRecord `json:"prs"`
}

type MonthlyCompletion struct {
	Month             int `json:"month"`
	WorkoutsCompleted int `json:"workouts_completed"`
}

type Feedback struct {
	FeedbackID int64     `json:"feedback_id"`
	LogID      int64     `json:"log_id"`
	TrainerID  int64     `json:"trainer_id"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
