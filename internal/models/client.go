package models

import "time"

type Client struct {
	ClientID     int64      `json:"client_id"`
	UserID       int64      `json:"user_id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	FitnessLevel *string    `json:"fitness_level"`
	Goals        *string    `json:"goals"`
	JoinDate     time.Time  `json:"join_date"`
}
