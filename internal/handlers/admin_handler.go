package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/ranya1958/FitFlow/internal/models"
	"github.com/ranya1958/FitFlow/internal/repository"
)

var (
	createUserRequired    = []string{"email", "password_hash", "role"}
	createTrainerRequired = []string{"user_id", "first_name", "last_name", "certification", "specialization"}
	createClientRequired  = []string{"user_id", "first_name", "last_name"}
	updatePermsRequired   = []string{"role", "new_permissions"}
)

type adminUserStore interface {
	Create(ctx context.Context, input repository.CreateUserInput) (int64, error)
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	UpdateFields(ctx context.Context, userID int64, payload map[string]any) error
	Delete(ctx context.Context, userID int64) error
	ListRolePermissions(ctx context.Context) ([]models.RolePermission, error)
	UpdatePermissionsByRole(ctx context.Context, role, permissions string) (int64, error)
}

type adminTrainerStore interface {
	Create(ctx context.Context, input repository.CreateTrainerInput) (int64, error)
}

type adminClientStore interface {
	Create(ctx context.Context, input repository.CreateClientInput) (int64, error)
}

type adminExerciseStore interface {
	UpdateFields(ctx context.Context, exerciseID int64, payload map[string]any) error
	Delete(ctx context.Context, exerciseID int64) error
}

type systemLogStore interface {
	List(ctx context.Context) ([]models.SystemLog, error)
	ListByAction(ctx context.Context, actionType string) ([]models.SystemLog, error)
}

type backupLogStore interface {
	List(ctx context.Context) ([]models.BackupLog, error)
	LatestSuccessful(ctx context.Context) (time.Time, int, error)
}

type AdminHandler struct {
	users      adminUserStore
	trainers   adminTrainerStore
	clients    adminClientStore
	exercises  adminExerciseStore
	systemLogs systemLogStore
	backupLogs backupLogStore
}

func NewAdminHandler(
	users adminUserStore,
	trainers adminTrainerStore,
	clients adminClientStore,
	exercises adminExerciseStore,
	systemLogs systemLogStore,
	backupLogs backupLogStore,
) *AdminHandler {
	return &AdminHandler{
		users:      users,
		trainers:   trainers,
		clients:    clients,
		exercises:  exercises,
		systemLogs: systemLogs,
		backupLogs: backupLogs,
	}
}

func (h *AdminHandler) GetSystemLogs(c *fiber.Ctx) error {
	logs, err := h.systemLogs.List(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(logs)
}

func (h *AdminHandler) GetSystemLogsByAction(c *fiber.Ctx) error {
	logs, err := h.systemLogs.ListByAction(c.Context(), c.Params("action_type"))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(logs)
}

func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}
	if missing := requireFields(payload, createUserRequired); missing != nil {
		return missingField(c, missing)
	}

	input := repository.CreateUserInput{
		Email:        stringField(payload, "email"),
		PasswordHash: stringField(payload, "password_hash"),
		Role:         stringField(payload, "role"),
		Permissions:  optionalString(payload, "permissions"),
	}
	if createdBy, ok := payload["created_by"].(float64); ok {
		id := int64(createdBy)
		input.CreatedBy = &id
	}

	userID, err := h.users.Create(c.Context(), input)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User created", "user_id": userID})
}

func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	user, err := h.users.GetByID(c.Context(), userID)
	if err != nil {
		return respondError(c, err, "User not found")
	}
	return c.JSON(user)
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	if err := h.users.UpdateFields(c.Context(), userID, payload); err != nil {
		return respondError(c, err, "User not found")
	}
	return c.JSON(fiber.Map{"message": "User updated"})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	if err := h.users.Delete(c.Context(), userID); err != nil {
		return respondError(c, err, "User not found")
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

func (h *AdminHandler) CreateTrainerProfile(c *fiber.Ctx) error {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}
	if missing := requireFields(payload, createTrainerRequired); missing != nil {
		return missingField(c, missing)
	}

	trainerID, err := h.trainers.Create(c.Context(), repository.CreateTrainerInput{
		UserID:         intField(payload, "user_id"),
		FirstName:      stringField(payload, "first_name"),
		LastName:       stringField(payload, "last_name"),
		Certification:  stringField(payload, "certification"),
		Specialization: stringField(payload, "specialization"),
	})
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Trainer profile created", "trainer_id": trainerID})
}

func (h *AdminHandler) CreateClientProfile(c *fiber.Ctx) error {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}
	if missing := requireFields(payload, createClientRequired); missing != nil {
		return missingField(c, missing)
	}

	clientID, err := h.clients.Create(c.Context(), repository.CreateClientInput{
		UserID:       intField(payload, "user_id"),
		FirstName:    stringField(payload, "first_name"),
		LastName:     stringField(payload, "last_name"),
		DateOfBirth:  optionalString(payload, "date_of_birth"),
		FitnessLevel: optionalString(payload, "fitness_level"),
		Goals:        optionalString(payload, "goals"),
	})
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Client profile created", "client_id": clientID})
}

func (h *AdminHandler) UpdateExercise(c *fiber.Ctx) error {
	exerciseID, err := parseID(c, "exercise_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	if err := h.exercises.UpdateFields(c.Context(), exerciseID, payload); err != nil {
		return respondError(c, err, "Exercise not found")
	}
	return c.JSON(fiber.Map{"message": "Exercise updated"})
}

func (h *AdminHandler) DeleteExercise(c *fiber.Ctx) error {
	exerciseID, err := parseID(c, "exercise_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid exercise id"})
	}

	if err := h.exercises.Delete(c.Context(), exerciseID); err != nil {
		return respondError(c, err, "Exercise not found")
	}
	return c.JSON(fiber.Map{"message": "Exercise deleted"})
}

func (h *AdminHandler) GetBackupLogs(c *fiber.Ctx) error {
	backups, err := h.backupLogs.List(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(backups)
}

// GetBackupStatus classifies backup freshness from the newest successful
// run: under a week is current, exactly a week is due, anything older is
// overdue.
func (h *AdminHandler) GetBackupStatus(c *fiber.Ctx) error {
	backupEnd, days, err := h.backupLogs.LatestSuccessful(c.Context())
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(fiber.Map{"message": "No successful backups found.", "status": "unknown"})
	}
	if err != nil {
		return respondError(c, err, "")
	}

	var status, message string
	switch {
	case days < 7:
		status = "up_to_date"
		message = "Backups are current."
	case days == 7:
		status = "due"
		message = "A backup is due today."
	default:
		status = "overdue"
		message = "Backups are overdue."
	}

	return c.JSON(fiber.Map{
		"status":            status,
		"message":           message,
		"days_since_backup": days,
		"last_backup_end":   backupEnd,
	})
}

func (h *AdminHandler) GetRolePermissions(c *fiber.Ctx) error {
	perms, err := h.users.ListRolePermissions(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(perms)
}

func (h *AdminHandler) UpdateRolePermissions(c *fiber.Ctx) error {
	payload := map[string]any{}
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}
	if missing := requireFields(payload, updatePermsRequired); missing != nil {
		return missingField(c, missing)
	}

	role := stringField(payload, "role")
	updated, err := h.users.UpdatePermissionsByRole(c.Context(), role, stringField(payload, "new_permissions"))
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(fiber.Map{
		"message":      fmt.Sprintf("Updated permissions for all %s users.", role),
		"rows_updated": updated,
	})
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
