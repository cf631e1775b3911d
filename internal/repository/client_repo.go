package repository

import "context"

type CreateClientInput struct {
	UserID       int64
	FirstName    string
	LastName     string
	DateOfBirth  *string
	FitnessLevel *string
	Goals        *string
}

type ClientRepository struct {
	db DBTX
}

func NewClientRepository(db DBTX) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, input CreateClientInput) (int64, error) {
	query := `
		INSERT INTO clients (user_id, first_name, last_name, date_of_birth, fitness_level, goals, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_DATE)
		RETURNING client_id
	`
	var clientID int64
	err := r.db.QueryRow(ctx, query,
		input.UserID,
		input.FirstName,
		input.LastName,
		input.DateOfBirth,
		input.FitnessLevel,
		input.Goals,
	).Scan(&clientID)
	if err != nil {
		return 0, err
	}
	return clientID, nil
}
