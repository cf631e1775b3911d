package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleTrainer = "trainer"
	RoleClient  = "client"
	RoleAnalyst = "analyst"
)

type User struct {
	UserID       int64     `json:"user_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	Permissions  *string   `json:"permissions"`
	CreatedBy    *int64    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

type RolePermission struct {
	UserID      int64   `json:"user_id"`
	Role        string  `json:"role"`
	Permissions *string `json:"permissions"`
}
