package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/ranya1958/FitFlow/internal/models"
	"github.com/ranya1958/FitFlow/internal/repository"
)

type stubUserStore struct {
	createID       int64
	createErr      error
	user           *models.User
	getErr         error
	updateErr      error
	deleteErr      error
	perms          []models.RolePermission
	permsErr       error
	updatedRows    int64
	permsUpdateErr error

	lastCreate   repository.CreateUserInput
	lastUpdateID int64
	lastPayload  map[string]any
	lastRole     string
	lastPerms    string
}

func (s *stubUserStore) Create(_ context.Context, input repository.CreateUserInput) (int64, error) {
	s.lastCreate = input
	return s.createID, s.createErr
}

func (s *stubUserStore) GetByID(_ context.Context, _ int64) (*models.User, error) {
	return s.user, s.getErr
}

func (s *stubUserStore) UpdateFields(_ context.Context, userID int64, payload map[string]any) error {
	s.lastUpdateID = userID
	s.lastPayload = payload
	return s.updateErr
}

func (s *stubUserStore) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

func (s *stubUserStore) ListRolePermissions(_ context.Context) ([]models.RolePermission, error) {
	return s.perms, s.permsErr
}

func (s *stubUserStore) UpdatePermissionsByRole(_ context.Context, role, permissions string) (int64, error) {
	s.lastRole = role
	s.lastPerms = permissions
	return s.updatedRows, s.permsUpdateErr
}

type stubTrainerStore struct {
	createID   int64
	createErr  error
	lastCreate repository.CreateTrainerInput
}

func (s *stubTrainerStore) Create(_ context.Context, input repository.CreateTrainerInput) (int64, error) {
	s.lastCreate = input
	return s.createID, s.createErr
}

type stubClientStore struct {
	createID   int64
	createErr  error
	lastCreate repository.CreateClientInput
}

func (s *stubClientStore) Create(_ context.Context, input repository.CreateClientInput) (int64, error) {
	s.lastCreate = input
	return s.createID, s.createErr
}

type stubExerciseStore struct {
	updateErr   error
	deleteErr   error
	lastPayload map[string]any
}

func (s *stubExerciseStore) UpdateFields(_ context.Context, _ int64, payload map[string]any) error {
	s.lastPayload = payload
	return s.updateErr
}

func (s *stubExerciseStore) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

type stubSystemLogStore struct {
	logs       []models.SystemLog
	err        error
	lastAction string
}

func (s *stubSystemLogStore) List(_ context.Context) ([]models.SystemLog, error) {
	return s.logs, s.err
}

func (s *stubSystemLogStore) ListByAction(_ context.Context, actionType string) ([]models.SystemLog, error) {
	s.lastAction = actionType
	return s.logs, s.err
}

type stubBackupLogStore struct {
	backups   []models.BackupLog
	listErr   error
	latestEnd time.Time
	days      int
	latestErr error
}

func (s *stubBackupLogStore) List(_ context.Context) ([]models.BackupLog, error) {
	return s.backups, s.listErr
}

func (s *stubBackupLogStore) LatestSuccessful(_ context.Context) (time.Time, int, error) {
	return s.latestEnd, s.days, s.latestErr
}

type adminStubs struct {
	users      *stubUserStore
	trainers   *stubTrainerStore
	clients    *stubClientStore
	exercises  *stubExerciseStore
	systemLogs *stubSystemLogStore
	backupLogs *stubBackupLogStore
}

func newAdminApp() (*fiber.App, *adminStubs) {
	stubs := &adminStubs{
		users:      &stubUserStore{},
		trainers:   &stubTrainerStore{},
		clients:    &stubClientStore{},
		exercises:  &stubExerciseStore{},
		systemLogs: &stubSystemLogStore{},
		backupLogs: &stubBackupLogStore{},
	}
	handler := NewAdminHandler(stubs.users, stubs.trainers, stubs.clients, stubs.exercises, stubs.systemLogs, stubs.backupLogs)

	app := fiber.New()
	admin := app.Group("/system_admin")
	admin.Post("/user", handler.CreateUser)
	admin.Put("/user/permissions", handler.UpdateRolePermissions)
	admin.Get("/user/:user_id", handler.GetUser)
	admin.Put("/user/:user_id", handler.UpdateUser)
	admin.Delete("/user/:user_id", handler.DeleteUser)
	admin.Post("/trainer", handler.CreateTrainerProfile)
	admin.Post("/client", handler.CreateClientProfile)
	admin.Put("/exercise/:exercise_id", handler.UpdateExercise)
	admin.Get("/backup_logs/status", handler.GetBackupStatus)
	return app, stubs
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	body := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return body
}

func TestCreateUserReturnsNewID(t *testing.T) {
	app, stubs := newAdminApp()
	stubs.users.createID = 42

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/system_admin/user", map[string]any{
		"email":         "new@fitflow.io",
		"password_hash": "hash",
		"role":          "client",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["user_id"] != float64(42) {
		t.Fatalf("expected user_id 42, got %v", body["user_id"])
	}
	if stubs.users.lastCreate.Email != "new@fitflow.io" {
		t.Fatalf("unexpected create input: %+v", stubs.users.lastCreate)
	}
}

func TestCreateUserReportsFirstMissingField(t *testing.T) {
	app, _ := newAdminApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/system_admin/user", map[string]any{
		"email": "new@fitflow.io",
		"role":  "client",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "Missing required field: password_hash" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestUpdateUserMissingRowIsNotFound(t *testing.T) {
	app, stubs := newAdminApp()
	stubs.users.updateErr = pgx.ErrNoRows

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/system_admin/user/999", map[string]any{
		"role": "trainer",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "User not found" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
	if stubs.users.lastUpdateID != 999 {
		t.Fatalf("expected id 999 forwarded, got %d", stubs.users.lastUpdateID)
	}
}

func TestUpdateUserWithoutRecognizedFields(t *testing.T) {
	app, stubs := newAdminApp()
	stubs.users.updateErr = repository.ErrNoFields

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/system_admin/user/7", map[string]any{
		"nickname": "shadow",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "No valid fields to update" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestGetUserForwardsStorageErrorText(t *testing.T) {
	app, stubs := newAdminApp()
	stubs.users.getErr = errors.New("connection refused: db01")

	req := httptest.NewRequest(http.MethodGet, "/system_admin/user/7", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "connection refused: db01" {
		t.Fatalf("expected raw error text, got %v", body["error"])
	}
}

func TestGetUserRejectsMalformedID(t *testing.T) {
	app, _ := newAdminApp()

	req := httptest.NewRequest(http.MethodGet, "/system_admin/user/abc", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestDeleteUserMissingRowIsNotFound(t *testing.T) {
	app, stubs := newAdminApp()
	stubs.users.deleteErr = pgx.ErrNoRows

	req := httptest.NewRequest(http.MethodDelete, "/system_admin/user/999", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCreateTrainerProfileRequiresCertification(t *testing.T) {
	app, _ := newAdminApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/system_admin/trainer", map[string]any{
		"user_id":        7,
		"first_name":     "Dana",
		"last_name":      "Reyes",
		"specialization": "strength",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "Missing required field: certification" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestCreateClientProfileForwardsOptionalFields(t *testing.T) {
	app, stubs := newAdminApp()
	stubs.clients.createID = 11

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/system_admin/client", map[string]any{
		"user_id":    7,
		"first_name": "Omar",
		"last_name":  "Haddad",
		"goals":      "marathon",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	if stubs.clients.lastCreate.UserID != 7 {
		t.Fatalf("expected user id 7, got %d", stubs.clients.lastCreate.UserID)
	}
	if stubs.clients.lastCreate.Goals == nil || *stubs.clients.lastCreate.Goals != "marathon" {
		t.Fatalf("unexpected goals: %+v", stubs.clients.lastCreate.Goals)
	}
	if stubs.clients.lastCreate.DateOfBirth != nil {
		t.Fatalf("expected absent date_of_birth to stay nil, got %v", *stubs.clients.lastCreate.DateOfBirth)
	}
}

func TestGetBackupStatusClassifiesFreshness(t *testing.T) {
	cases := []struct {
		name   string
		days   int
		status string
	}{
		{"current", 2, "up_to_date"},
		{"due", 7, "due"},
		{"overdue", 9, "overdue"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, stubs := newAdminApp()
			stubs.backupLogs.latestEnd = time.Date(2026, 8, 20, 3, 0, 0, 0, time.UTC)
			stubs.backupLogs.days = tc.days

			req := httptest.NewRequest(http.MethodGet, "/system_admin/backup_logs/status", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}

			body := decodeBody(t, resp)
			if body["status"] != tc.status {
				t.Fatalf("expected status %q, got %v", tc.status, body["status"])
			}
			if body["days_since_backup"] != float64(tc.days) {
				t.Fatalf("expected %d days, got %v", tc.days, body["days_since_backup"])
			}
		})
	}
}

func TestGetBackupStatusWithoutSuccessfulRuns(t *testing.T) {
	app, stubs := newAdminApp()
	stubs.backupLogs.latestErr = pgx.ErrNoRows

	req := httptest.NewRequest(http.MethodGet, "/system_admin/backup_logs/status", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["status"] != "unknown" {
		t.Fatalf("expected unknown status, got %v", body["status"])
	}
}

func TestUpdateRolePermissionsReportsRowCount(t *testing.T) {
	app, stubs := newAdminApp()
	stubs.users.updatedRows = 3

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/system_admin/user/permissions", map[string]any{
		"role":            "trainer",
		"new_permissions": "manage_programs",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["message"] != "Updated permissions for all trainer users." {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["rows_updated"] != float64(3) {
		t.Fatalf("expected 3 rows updated, got %v", body["rows_updated"])
	}
	if stubs.users.lastPerms != "manage_programs" {
		t.Fatalf("unexpected permissions forwarded: %q", stubs.users.lastPerms)
	}
}

func TestUpdateExerciseUnknownRowIsNotFound(t *testing.T) {
	app, stubs := newAdminApp()
	stubs.exercises.updateErr = pgx.ErrNoRows

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/system_admin/exercise/999", map[string]any{
		"name": "Incline Press",
	}))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["error"] != "Exercise not found" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}
