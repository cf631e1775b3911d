package repository

import (
	"context"
	"time"

	"github.com/ranya1958/FitFlow/internal/models"
)

type BackupLogRepository struct {
	db DBTX
}

func NewBackupLogRepository(db DBTX) *BackupLogRepository {
	return &BackupLogRepository{db: db}
}

func (r *BackupLogRepository) List(ctx context.Context) ([]models.BackupLog, error) {
	query := `
		SELECT backup_id, backup_start, backup_end, status, size_mb
		FROM backup_logs
		ORDER BY backup_end DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	backups := make([]models.BackupLog, 0)
	for rows.Next() {
		var b models.BackupLog
		if err := rows.Scan(&b.BackupID, &b.BackupStart, &b.BackupEnd, &b.Status, &b.SizeMB); err != nil {
			return nil, err
		}
		backups = append(backups, b)
	}
	return backups, rows.Err()
}

// LatestSuccessful returns when the newest successful backup finished and
// how many whole days ago that was. pgx.ErrNoRows means no backup has ever
// succeeded.
func (r *BackupLogRepository) LatestSuccessful(ctx context.Context) (time.Time, int, error) {
	query := `
		SELECT backup_end, (CURRENT_DATE - backup_end::date) AS days_since_backup
		FROM backup_logs
		WHERE status = 'success'
		ORDER BY backup_end DESC
		LIMIT 1
	`
	var backupEnd time.Time
	var days int
	err := r.db.QueryRow(ctx, query).Scan(&backupEnd, &days)
	if err != nil {
		return time.Time{}, 0, err
	}
	return backupEnd, days, nil
}
