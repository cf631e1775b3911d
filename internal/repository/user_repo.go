package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ranya1958/FitFlow/internal/models"
)

// userUpdatableFields is the full set of columns an admin may change on an
// existing account. Payload keys outside this list are ignored.
var userUpdatableFields = []string{"permissions", "role"}

type CreateUserInput struct {
	Email        string
	PasswordHash string
	Role         string
	Permissions  *string
	CreatedBy    *int64
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, input CreateUserInput) (int64, error) {
	query := `
		INSERT INTO users (email, password_hash, role, permissions, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id
	`
	var userID int64
	err := r.db.QueryRow(ctx, query,
		input.Email,
		input.PasswordHash,
		input.Role,
		input.Permissions,
		input.CreatedBy,
	).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `
		SELECT user_id, email, password_hash, role, permissions, created_by, created_at
		FROM users
		WHERE user_id = $1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.UserID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Permissions,
		&user.CreatedBy,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateFields(ctx context.Context, userID int64, payload map[string]any) error {
	return execUpdate(ctx, r.db, "users", "user_id", userID, payload, userUpdatableFields)
}

func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *UserRepository) ListRolePermissions(ctx context.Context) ([]models.RolePermission, error) {
	query := `
		SELECT user_id, role, permissions
		FROM users
		ORDER BY role
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := make([]models.RolePermission, 0)
	for rows.Next() {
		var p models.RolePermission
		if err := rows.Scan(&p.UserID, &p.Role, &p.Permissions); err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

// UpdatePermissionsByRole rewrites the permissions of every account holding
// the given role and reports how many rows changed.
func (r *UserRepository) UpdatePermissionsByRole(ctx context.Context, role, permissions string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET permissions = $1 WHERE role = $2`,
		permissions, role,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
