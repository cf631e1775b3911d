package repository

import (
	"context"

	"github.com/ranya1958/FitFlow/internal/models"
)

var workoutLogUpdatableFields = []string{"duration_minutes", "notes"}

type CreateWorkoutLogInput struct {
	ClientID         int64
	WorkoutID        int64
	WorkoutDate      string
	CompletionStatus string
	DurationMinutes  int
	Notes            string
}

type WorkoutLogRepository struct {
	db DBTX
}

func NewWorkoutLogRepository(db DBTX) *WorkoutLogRepository {
	return &WorkoutLogRepository{db: db}
}

// ListCompletedForClient returns the client's most recent completed
// workouts, newest first, joined with the template name.
func (r *WorkoutLogRepository) ListCompletedForClient(ctx context.Context, clientID int64, limit int) ([]models.CompletedLogEntry, error) {
	query := `
		SELECT wl.log_id, wl.workout_date, wt.name AS workout_name, wl.completion_status, wl.duration_minutes
		FROM workout_logs wl
		JOIN workout_templates wt ON wl.workout_id = wt.workout_id
		WHERE wl.client_id = $1
		  AND wl.completion_status = 'completed'
		ORDER BY wl.workout_date DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, clientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.CompletedLogEntry, 0)
	for rows.Next() {
		var entry models.CompletedLogEntry
		if err := rows.Scan(
			&entry.LogID,
			&entry.WorkoutDate,
			&entry.WorkoutName,
			&entry.CompletionStatus,
			&entry.DurationMinutes,
		); err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

func (r *WorkoutLogRepository) Create(ctx context.Context, input CreateWorkoutLogInput) (int64, error) {
	query := `
		INSERT INTO workout_logs (client_id, workout_id, workout_date, completion_status, duration_minutes, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING log_id
	`
	var logID int64
	err := r.db.QueryRow(ctx, query,
		input.ClientID,
		input.WorkoutID,
		input.WorkoutDate,
		input.CompletionStatus,
		input.DurationMinutes,
		input.Notes,
	).Scan(&logID)
	if err != nil {
		return 0, err
	}
	return logID, nil
}

func (r *WorkoutLogRepository) UpdateFields(ctx context.Context, logID int64, payload map[string]any) error {
	return execUpdate(ctx, r.db, "workout_logs", "log_id", logID, payload, workoutLogUpdatableFields)
}

// DeleteNotStarted removes every log the client never began and reports how
// many rows went away. Zero is a valid outcome, not an error.
func (r *WorkoutLogRepository) DeleteNotStarted(ctx context.Context, clientID int64) (int64, error) {
	query := `
		DELETE FROM workout_logs
		WHERE client_id = $1
		  AND completion_status = 'not_started'
	`
	tag, err := r.db.Exec(ctx, query, clientID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MonthlyCompletions counts completed workouts per calendar month for the
// current and previous month.
func (r *WorkoutLogRepository) MonthlyCompletions(ctx context.Context, clientID int64) ([]models.MonthlyCompletion, error) {
	query := `
		SELECT EXTRACT(MONTH FROM workout_date)::int AS month, COUNT(*) AS workouts_completed
		FROM workout_logs
		WHERE client_id = $1
		  AND workout_date >= DATE_TRUNC('month', CURRENT_DATE) - INTERVAL '1 month'
		  AND completion_status = 'completed'
		GROUP BY EXTRACT(MONTH FROM workout_date)
		ORDER BY month DESC
	`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completions := make([]models.MonthlyCompletion, 0)
	for rows.Next() {
		var mc models.MonthlyCompletion
		if err := rows.Scan(&mc.Month, &mc.WorkoutsCompleted); err != nil {
			return nil, err
		}
		completions = append(completions, mc)
	}
	return completions, rows.Err()
}

// ListCompletedWithClients is the trainer view: every completed log joined
// with the client's name.
func (r *WorkoutLogRepository) ListCompletedWithClients(ctx context.Context) ([]models.ClientWorkoutLog, error) {
	query := `
		SELECT wl.log_id, wl.client_id, wl.workout_id, wl.workout_date, wl.completion_status,
		       wl.duration_minutes, wl.notes, wl.pr, c.first_name, c.last_name
		FROM workout_logs wl
		JOIN clients c ON wl.client_id = c.client_id
		WHERE wl.completion_status = 'completed'
		ORDER BY wl.workout_date DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.ClientWorkoutLog, 0)
	for rows.Next() {
		var l models.ClientWorkoutLog
		if err := rows.Scan(
			&l.LogID,
			&l.ClientID,
			&l.WorkoutID,
			&l.WorkoutDate,
			&l.CompletionStatus,
			&l.DurationMinutes,
			&l.Notes,
			&l.PR,
			&l.FirstName,
			&l.LastName,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *WorkoutLogRepository) CompletionStats(ctx context.Context, clientID int64) (total, completed int64, err error) {
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE completion_status = 'completed') AS completed
		FROM workout_logs
		WHERE client_id = $1
	`
	err = r.db.QueryRow(ctx, query, clientID).Scan(&total, &completed)
	return total, completed, err
}

func (r *WorkoutLogRepository) PersonalRecords(ctx context.Context, clientID int64) ([]models.PersonalRecord, error) {
	query := `
		SELECT workout_date, pr
		FROM workout_logs
		WHERE client_id = $1 AND pr IS NOT NULL
		ORDER BY workout_date DESC
	`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.PersonalRecord, 0)
	for rows.Next() {
		var rec models.PersonalRecord
		if err := rows.Scan(&rec.WorkoutDate, &rec.PR); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
