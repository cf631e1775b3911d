package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ranya1958/FitFlow/internal/models"
)

type FeedbackRepository struct {
	db DBTX
}

func NewFeedbackRepository(db DBTX) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, trainerID, logID int64, comment string) (int64, error) {
	query := `
		INSERT INTO trainer_feedback (trainer_id, log_id, comment)
		VALUES ($1, $2, $3)
		RETURNING feedback_id
	`
	var feedbackID int64
	err := r.db.QueryRow(ctx, query, trainerID, logID, comment).Scan(&feedbackID)
	if err != nil {
		return 0, err
	}
	return feedbackID, nil
}

func (r *FeedbackRepository) ListByLog(ctx context.Context, logID int64) ([]models.Feedback, error) {
	query := `
		SELECT feedback_id, log_id, trainer_id, comment, created_at
		FROM trainer_feedback
		WHERE log_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, logID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := make([]models.Feedback, 0)
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.FeedbackID, &f.LogID, &f.TrainerID, &f.Comment, &f.CreatedAt); err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

func (r *FeedbackRepository) Delete(ctx context.Context, feedbackID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trainer_feedback WHERE feedback_id = $1`, feedbackID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
