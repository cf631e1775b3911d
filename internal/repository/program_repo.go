package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ranya1958/FitFlow/internal/models"
)

var programUpdatableFields = []string{"name", "description"}

type CreateProgramInput struct {
	WorkoutID   int64
	ClientID    int64
	Name        string
	Description *string
}

type ProgramRepository struct {
	db DBTX
}

func NewProgramRepository(db DBTX) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) ListByTrainer(ctx context.Context, trainerID int64) ([]models.ClientProgram, error) {
	query := `
		SELECT program_id, workout_id, created_by, client_id, name, description, created_at
		FROM client_programs
		WHERE created_by = $1
		ORDER BY created_at DESC, program_id DESC
	`
	rows, err := r.db.Query(ctx, query, trainerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := make([]models.ClientProgram, 0)
	for rows.Next() {
		var p models.ClientProgram
		if err := rows.Scan(
			&p.ProgramID,
			&p.WorkoutID,
			&p.CreatedBy,
			&p.ClientID,
			&p.Name,
			&p.Description,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func (r *ProgramRepository) Create(ctx context.Context, trainerID int64, input CreateProgramInput) (int64, error) {
	query := `
		INSERT INTO client_programs (workout_id, created_by, client_id, name, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING program_id
	`
	var programID int64
	err := r.db.QueryRow(ctx, query,
		input.WorkoutID,
		trainerID,
		input.ClientID,
		input.Name,
		input.Description,
	).Scan(&programID)
	if err != nil {
		return 0, err
	}
	return programID, nil
}

func (r *ProgramRepository) UpdateFields(ctx context.Context, programID int64, payload map[string]any) error {
	return execUpdate(ctx, r.db, "client_programs", "program_id", programID, payload, programUpdatableFields)
}

func (r *ProgramRepository) Delete(ctx context.Context, programID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM client_programs WHERE program_id = $1`, programID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
