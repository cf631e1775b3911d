package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ranya1958/FitFlow/internal/config"
	"github.com/ranya1958/FitFlow/internal/handlers"
	"github.com/ranya1958/FitFlow/internal/repository"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	clientRepo := repository.NewClientRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	programRepo := repository.NewProgramRepository(db)
	workoutLogRepo := repository.NewWorkoutLogRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	workoutExerciseRepo := repository.NewWorkoutExerciseRepository(db)
	systemLogRepo := repository.NewSystemLogRepository(db)
	backupLogRepo := repository.NewBackupLogRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	adminHandler := handlers.NewAdminHandler(userRepo, trainerRepo, clientRepo, exerciseRepo, systemLogRepo, backupLogRepo)
	analystHandler := handlers.NewAnalystHandler(analyticsRepo)
	templateHandler := handlers.NewTemplateHandler(templateRepo)
	programHandler := handlers.NewProgramHandler(programRepo)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo)
	workoutExerciseHandler := handlers.NewWorkoutExerciseHandler(workoutExerciseRepo)
	trainerLogHandler := handlers.NewTrainerLogHandler(workoutLogRepo)
	workoutLogHandler := handlers.NewWorkoutLogHandler(workoutLogRepo, cfg.RecentLogLimit)

	app.Get("/navigation", handlers.GetNavigation)

	admin := app.Group("/system_admin")
	admin.Get("/system_logs", adminHandler.GetSystemLogs)
	admin.Get("/system_logs/:action_type", adminHandler.GetSystemLogsByAction)
	admin.Post("/user", adminHandler.CreateUser)
	// static permission routes have to land before :user_id can match
	admin.Get("/user/permissions", adminHandler.GetRolePermissions)
	admin.Put("/user/permissions", adminHandler.UpdateRolePermissions)
	admin.Get("/user/:user_id", adminHandler.GetUser)
	admin.Put("/user/:user_id", adminHandler.UpdateUser)
	admin.Delete("/user/:user_id", adminHandler.DeleteUser)
	admin.Post("/trainer", adminHandler.CreateTrainerProfile)
	admin.Post("/client", adminHandler.CreateClientProfile)
	admin.Put("/exercise/:exercise_id", adminHandler.UpdateExercise)
	admin.Delete("/exercise/:exercise_id", adminHandler.DeleteExercise)
	admin.Get("/backup_logs", adminHandler.GetBackupLogs)
	admin.Get("/backup_logs/status", adminHandler.GetBackupStatus)

	analyst := app.Group("/health_analyst")
	analyst.Get("/avg_duration", analystHandler.GetAverageWorkoutDuration)
	analyst.Get("/client_info", analystHandler.GetClientInfo)
	analyst.Get("/recent_metrics", analystHandler.GetRecentHealthMetrics)
	analyst.Get("/health_progression", analystHandler.GetHealthProgression)
	analyst.Get("/completion_rates", analystHandler.GetProgramCompletionRates)
	analyst.Get("/template_usage", analystHandler.GetTemplateUsage)

	templates := app.Group("/trainer_templates")
	templates.Get("/workout_session_template/:trainer_id", templateHandler.ListTemplates)
	templates.Post("/workout_session_template/:trainer_id", templateHandler.CreateTemplate)
	templates.Put("/workout_session_template/:workout_id", templateHandler.UpdateTemplate)
	templates.Delete("/workout_session_template/:workout_id", templateHandler.DeleteTemplate)

	programs := app.Group("/trainer_programs")
	programs.Get("/client-programs/:trainer_id", programHandler.ListPrograms)
	programs.Post("/client-programs/:trainer_id", programHandler.AssignProgram)
	programs.Put("/client-programs/:program_id", programHandler.UpdateProgram)
	programs.Delete("/client-programs/:program_id", programHandler.DeleteProgram)

	feedback := app.Group("/trainer_feedback")
	feedback.Get("/log/:log_id", feedbackHandler.GetFeedbackForLog)
	feedback.Post("/:trainer_id", feedbackHandler.CreateFeedback)
	feedback.Delete("/:feedback_id", feedbackHandler.DeleteFeedback)

	workoutExercises := app.Group("/trainer_workout_excs")
	workoutExercises.Get("/workout-exercises", workoutExerciseHandler.ListWorkoutExercises)
	workoutExercises.Post("/workout-exercises", workoutExerciseHandler.CreateWorkoutExercise)

	trainerLogs := app.Group("/trainer_logs")
	trainerLogs.Get("/client-logs/completed", trainerLogHandler.GetCompletedLogs)
	trainerLogs.Get("/clients/:client_id/progress", trainerLogHandler.GetClientProgress)

	client := app.Group("/client")
	client.Get("/client_workout_log", workoutLogHandler.GetWorkoutLogs)
	client.Post("/client_workout_log", workoutLogHandler.CreateWorkoutLog)
	client.Get("/client_workout_log/completion_rate/monthly", workoutLogHandler.GetMonthlyCompletionRate)
	client.Put("/client_workout_log/:log_id", workoutLogHandler.UpdateWorkoutLog)
	client.Delete("/client_workout_log", workoutLogHandler.DeleteIncompleteLogs)
}
