package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestUserRepositoryCreateReturnsNewID(t *testing.T) {
	db := &stubDBTX{
		queryRowFn: func(_ context.Context, _ string, _ ...any) stubRow {
			return stubRow{values: []any{int64(42)}}
		},
	}
	repo := NewUserRepository(db)

	perms := "manage_users"
	userID, err := repo.Create(context.Background(), CreateUserInput{
		Email:        "admin@fitflow.io",
		PasswordHash: "hash",
		Role:         "admin",
		Permissions:  &perms,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
	if len(db.lastArgs) != 5 {
		t.Fatalf("expected 5 insert args, got %d", len(db.lastArgs))
	}
	if db.lastArgs[0] != "admin@fitflow.io" {
		t.Fatalf("unexpected email arg: %v", db.lastArgs[0])
	}
}

func TestUserRepositoryUpdateFieldsMissingUser(t *testing.T) {
	db := &stubDBTX{execTag: pgconn.NewCommandTag("UPDATE 0")}
	repo := NewUserRepository(db)

	err := repo.UpdateFields(context.Background(), 999, map[string]any{"role": "client"})
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}

func TestUserRepositoryUpdateFieldsIgnoresUnlistedColumns(t *testing.T) {
	db := &stubDBTX{execTag: pgconn.NewCommandTag("UPDATE 1")}
	repo := NewUserRepository(db)

	err := repo.UpdateFields(context.Background(), 7, map[string]any{
		"role":          "trainer",
		"email":         "smuggled@fitflow.io",
		"password_hash": "smuggled",
	})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if db.lastQuery != "UPDATE users SET role = $1 WHERE user_id = $2" {
		t.Fatalf("unexpected query: %q", db.lastQuery)
	}
}

func TestUserRepositoryDeleteMissingUser(t *testing.T) {
	db := &stubDBTX{execTag: pgconn.NewCommandTag("DELETE 0")}
	repo := NewUserRepository(db)

	err := repo.Delete(context.Background(), 999)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}

func TestUserRepositoryUpdatePermissionsByRoleReportsRowCount(t *testing.T) {
	db := &stubDBTX{execTag: pgconn.NewCommandTag("UPDATE 3")}
	repo := NewUserRepository(db)

	updated, err := repo.UpdatePermissionsByRole(context.Background(), "trainer", "manage_programs")
	if err != nil {
		t.Fatalf("UpdatePermissionsByRole: %v", err)
	}
	if updated != 3 {
		t.Fatalf("expected 3 rows updated, got %d", updated)
	}
	if db.lastArgs[0] != "manage_programs" || db.lastArgs[1] != "trainer" {
		t.Fatalf("unexpected args: %v", db.lastArgs)
	}
}
