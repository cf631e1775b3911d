package repository

import (
	"context"

	"github.com/ranya1958/FitFlow/internal/models"
)

type SystemLogRepository struct {
	db DBTX
}

func NewSystemLogRepository(db DBTX) *SystemLogRepository {
	return &SystemLogRepository{db: db}
}

func (r *SystemLogRepository) List(ctx context.Context) ([]models.SystemLog, error) {
	query := `
		SELECT log_id, user_id, action_type, details, timestamp
		FROM system_logs
		ORDER BY timestamp DESC
	`
	return r.scanLogs(ctx, query)
}

func (r *SystemLogRepository) ListByAction(ctx context.Context, actionType string) ([]models.SystemLog, error) {
	query := `
		SELECT log_id, user_id, action_type, details, timestamp
		FROM system_logs
		WHERE action_type = $1
		ORDER BY timestamp DESC
	`
	return r.scanLogs(ctx, query, actionType)
}

func (r *SystemLogRepository) scanLogs(ctx context.Context, query string, args ...any) ([]models.SystemLog, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.SystemLog, 0)
	for rows.Next() {
		var l models.SystemLog
		if err := rows.Scan(&l.LogID, &l.UserID, &l.ActionType, &l.Details, &l.Timestamp); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
