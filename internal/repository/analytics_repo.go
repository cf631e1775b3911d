package repository

import (
	"context"

	"github.com/ranya1958/FitFlow/internal/models"
)

// AnalyticsRepository holds the health-analyst report queries. Every query
// is fixed; only identifiers coming through parameters are bound.
type AnalyticsRepository struct {
	db DBTX
}

func NewAnalyticsRepository(db DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// WeeklyDurations averages completed-workout duration per client per ISO
// week.
func (r *AnalyticsRepository) WeeklyDurations(ctx context.Context) ([]models.WeeklyDuration, error) {
	query := `
		SELECT c.client_id,
		       EXTRACT(ISOYEAR FROM wl.workout_date)::int AS year,
		       EXTRACT(WEEK FROM wl.workout_date)::int AS week,
		       AVG(wl.duration_minutes)::float8 AS avg_duration
		FROM clients c
		JOIN workout_logs wl ON c.client_id = wl.client_id
		WHERE wl.completion_status = 'completed'
		GROUP BY c.client_id, EXTRACT(ISOYEAR FROM wl.workout_date), EXTRACT(WEEK FROM wl.workout_date)
		ORDER BY c.client_id, year, week
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	durations := make([]models.WeeklyDuration, 0)
	for rows.Next() {
		var d models.WeeklyDuration
		if err := rows.Scan(&d.ClientID, &d.Year, &d.Week, &d.AvgDuration); err != nil {
			return nil, err
		}
		durations = append(durations, d)
	}
	return durations, rows.Err()
}

func (r *AnalyticsRepository) ClientInfo(ctx context.Context) ([]models.ClientInfo, error) {
	query := `
		SELECT client_id, first_name, last_name, date_of_birth, goals, fitness_level,
		       EXTRACT(YEAR FROM AGE(date_of_birth))::int AS age,
		       join_date
		FROM clients
		ORDER BY client_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]models.ClientInfo, 0)
	for rows.Next() {
		var c models.ClientInfo
		if err := rows.Scan(
			&c.ClientID,
			&c.FirstName,
			&c.LastName,
			&c.DateOfBirth,
			&c.Goals,
			&c.FitnessLevel,
			&c.Age,
			&c.JoinDate,
		); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// RecentMetrics returns each client's newest health-metrics row.
func (r *AnalyticsRepository) RecentMetrics(ctx context.Context) ([]models.RecentMetric, error) {
	query := `
		SELECT hm.client_id, hm.record_date, hm.weight_kg, hm.body_fat_percentage, hm.heart_rate
		FROM health_metrics hm
		WHERE hm.record_date = (
		    SELECT MAX(record_date)
		    FROM health_metrics
		    WHERE client_id = hm.client_id
		)
		ORDER BY hm.client_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metrics := make([]models.RecentMetric, 0)
	for rows.Next() {
		var m models.RecentMetric
		if err := rows.Scan(&m.ClientID, &m.RecordDate, &m.WeightKG, &m.BodyFatPercentage, &m.HeartRate); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// HealthProgression averages weight and body fat per client per calendar
// month.
func (r *AnalyticsRepository) HealthProgression(ctx context.Context) ([]models.HealthProgressionPoint, error) {
	query := `
		SELECT client_id,
		       EXTRACT(MONTH FROM record_date)::int AS month,
		       AVG(weight_kg)::float8 AS avg_weight,
		       AVG(body_fat_percentage)::float8 AS avg_body_fat
		FROM health_metrics
		GROUP BY client_id, EXTRACT(MONTH FROM record_date)
		ORDER BY client_id, month
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]models.HealthProgressionPoint, 0)
	for rows.Next() {
		var p models.HealthProgressionPoint
		if err := rows.Scan(&p.ClientID, &p.Month, &p.AvgWeight, &p.AvgBodyFat); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// ProgramCompletionRates ranks programs by the share of their logged
// workouts that were completed.
func (r *AnalyticsRepository) ProgramCompletionRates(ctx context.Context) ([]models.ProgramCompletionRate, error) {
	query := `
		SELECT cp.program_id,
		       cp.name AS program_name,
		       COUNT(wl.log_id) AS total_workouts,
		       COUNT(*) FILTER (WHERE wl.completion_status = 'completed') AS completed_workouts,
		       ROUND(COUNT(*) FILTER (WHERE wl.completion_status = 'completed')::numeric / COUNT(wl.log_id), 3)::float8 AS completion_rate
		FROM client_programs cp
		JOIN workout_logs wl
		  ON cp.workout_id = wl.workout_id
		 AND cp.client_id = wl.client_id
		GROUP BY cp.program_id, cp.name
		ORDER BY completion_rate DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rates := make([]models.ProgramCompletionRate, 0)
	for rows.Next() {
		var pc models.ProgramCompletionRate
		if err := rows.Scan(&pc.ProgramID, &pc.ProgramName, &pc.TotalWorkouts, &pc.CompletedWorkouts, &pc.CompletionRate); err != nil {
			return nil, err
		}
		rates = append(rates, pc)
	}
	return rates, rows.Err()
}

func (r *AnalyticsRepository) TemplateUsage(ctx context.Context) ([]models.TemplateUsage, error) {
	query := `
		SELECT wl.workout_id, wt.name, COUNT(*) AS used
		FROM workout_logs wl
		JOIN workout_templates wt ON wl.workout_id = wt.workout_id
		GROUP BY wl.workout_id, wt.name
		ORDER BY used DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := make([]models.TemplateUsage, 0)
	for rows.Next() {
		var u models.TemplateUsage
		if err := rows.Scan(&u.WorkoutID, &u.Name, &u.Used); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}
