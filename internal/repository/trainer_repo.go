package repository

import "context"

type CreateTrainerInput struct {
	UserID         int64
	FirstName      string
	LastName       string
	Certification  string
	Specialization string
}

type TrainerRepository struct {
	db DBTX
}

func NewTrainerRepository(db DBTX) *TrainerRepository {
	return &TrainerRepository{db: db}
}

func (r *TrainerRepository) Create(ctx context.Context, input CreateTrainerInput) (int64, error) {
	query := `
		INSERT INTO trainers (user_id, first_name, last_name, certification, specialization)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING trainer_id
	`
	var trainerID int64
	err := r.db.QueryRow(ctx, query,
		input.UserID,
		input.FirstName,
		input.LastName,
		input.Certification,
		input.Specialization,
	).Scan(&trainerID)
	if err != nil {
		return 0, err
	}
	return trainerID, nil
}
