package models

import "time"

type SystemLog struct {
	LogID      int64     `json:"log_id"`
	UserID     *int64    `json:"user_id"`
	ActionType string    `json:"action_type"`
	Details    *string   `json:"details"`
	Timestamp  time.Time `json:"timestamp"`
}

type BackupLog struct {
	BackupID    int64     `json:"backup_id"`
	BackupStart time.Time `json:"backup_start"`
	BackupEnd   time.Time `json:"backup_end"`
	Status      string    `json:"status"`
	SizeMB      *float64  `json:"size_mb"`
}
