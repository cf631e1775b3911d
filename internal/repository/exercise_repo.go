package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

var exerciseUpdatableFields = []string{"name", "description", "category"}

type ExerciseRepository struct {
	db DBTX
}

func NewExerciseRepository(db DBTX) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) UpdateFields(ctx context.Context, exerciseID int64, payload map[string]any) error {
	return execUpdate(ctx, r.db, "exercises", "exercise_id", exerciseID, payload, exerciseUpdatableFields)
}

func (r *ExerciseRepository) Delete(ctx context.Context, exerciseID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM exercises WHERE exercise_id = $1`, exerciseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
