package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ranya1958/FitFlow/internal/models"
)

var templateUpdatableFields = []string{"name", "description", "duration_minutes", "difficulty"}

type CreateTemplateInput struct {
	Name            string
	Description     *string
	DurationMinutes *int
	Difficulty      string
}

type TemplateRepository struct {
	db DBTX
}

func NewTemplateRepository(db DBTX) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) ListByTrainer(ctx context.Context, trainerID int64) ([]models.WorkoutTemplate, error) {
	query := `
		SELECT workout_id, trainer_id, name, description, duration_minutes, difficulty, date_created
		FROM workout_templates
		WHERE trainer_id = $1
		ORDER BY date_created DESC, workout_id DESC
	`
	rows, err := r.db.Query(ctx, query, trainerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]models.WorkoutTemplate, 0)
	for rows.Next() {
		var t models.WorkoutTemplate
		if err := rows.Scan(
			&t.WorkoutID,
			&t.TrainerID,
			&t.Name,
			&t.Description,
			&t.DurationMinutes,
			&t.Difficulty,
			&t.DateCreated,
		); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *TemplateRepository) Create(ctx context.Context, trainerID int64, input CreateTemplateInput) (int64, error) {
	query := `
		INSERT INTO workout_templates (trainer_id, name, description, duration_minutes, difficulty)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING workout_id
	`
	var workoutID int64
	err := r.db.QueryRow(ctx, query,
		trainerID,
		input.Name,
		input.Description,
		input.DurationMinutes,
		input.Difficulty,
	).Scan(&workoutID)
	if err != nil {
		return 0, err
	}
	return workoutID, nil
}

func (r *TemplateRepository) UpdateFields(ctx context.Context, workoutID int64, payload map[string]any) error {
	return execUpdate(ctx, r.db, "workout_templates", "workout_id", workoutID, payload, templateUpdatableFields)
}

func (r *TemplateRepository) Delete(ctx context.Context, workoutID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM workout_templates WHERE workout_id = $1`, workoutID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
