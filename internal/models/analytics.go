package models

import "time"

// Report rows for the health-analyst endpoints. Each maps one aggregate
// query's result set onto named fields.

type WeeklyDuration struct {
	ClientID    int64   `json:"client_id"`
	Year        int     `json:"year"`
	Week        int     `json:"week"`
	AvgDuration float64 `json:"avg_duration"`
}

type ClientInfo struct {
	ClientID     int64      `json:"client_id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	Goals        *string    `json:"goals"`
	FitnessLevel *string    `json:"fitness_level"`
	Age          *int       `json:"age"`
	JoinDate     time.Time  `json:"join_date"`
}

type RecentMetric struct {
	ClientID          int64     `json:"client_id"`
	RecordDate        time.Time `json:"record_date"`
	WeightKG          float64   `json:"weight_kg"`
	BodyFatPercentage float64   `json:"body_fat_percentage"`
	HeartRate         int       `json:"heart_rate"`
}

type HealthProgressionPoint struct {
	ClientID   int64   `json:"client_id"`
	Month      int     `json:"month"`
	AvgWeight  float64 `json:"avg_weight_kg"`
	AvgBodyFat float64 `json:"avg_body_fat_percentage"`
}

type ProgramCompletionRate struct {
	ProgramID         int64   `json:"program_id"`
	ProgramName       string  `json:"program_name"`
	TotalWorkouts     int64   `json:"total_workouts"`
	CompletedWorkouts int64   `json:"completed_workouts"`
	CompletionRate    float64 `json:"completion_rate"`
}

type TemplateUsage struct {
	WorkoutID int64  `json:"workout_id"`
	Name      string `json:"name"`
	Used      int64  `json:"used"`
}
