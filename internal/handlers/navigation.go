package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ranya1958/FitFlow/internal/middleware"
	"github.com/ranya1958/FitFlow/internal/models"
)

var (
	generalLinks = []models.NavLink{
		{Label: "Home", Page: "Home", Icon: "🏠"},
		{Label: "About", Page: "About", Icon: "🧠"},
	}

	roleLinks = map[string][]models.NavLink{
		"system_admin": {
			{Label: "Admin Home", Page: "Sys_Admin_home", Icon: "🖥️"},
			{Label: "System Logs", Page: "system_logs", Icon: "📜"},
			{Label: "Backup Logs", Page: "backup_logs", Icon: "💾"},
			{Label: "Create User", Page: "create_user", Icon: "➕"},
			{Label: "Create Trainer Profile", Page: "create_trainer", Icon: "🏋️"},
			{Label: "Create Client Profile", Page: "create_client", Icon: "👤"},
			{Label: "Update Exercise", Page: "update_exercise", Icon: "✏️"},
			{Label: "Delete Exercise", Page: "delete_exercise", Icon: "🗑️"},
			{Label: "Manage Permissions", Page: "manage_permissions", Icon: "🔐"},
		},
		"health_analyst": {
			{Label: "Health Analyst Home", Page: "Health_Analyst_home", Icon: "🧬"},
			{Label: "Avg Workout Duration", Page: "avg_workout_duration", Icon: "⏱️"},
			{Label: "Client Info", Page: "client_info", Icon: "📋"},
			{Label: "Recent Health Metrics", Page: "recent_health_metrics", Icon: "📊"},
			{Label: "Health Progression", Page: "health_progression", Icon: "📈"},
			{Label: "Program Completion", Page: "program_completion", Icon: "🎯"},
			{Label: "Workout Frequency", Page: "workout_frequency", Icon: "🔁"},
		},
		"trainer": {
			{Label: "Trainer Home", Page: "Trainer_home"},
			{Label: "Create Exercises", Page: "trainer_workout_specific_exercise"},
			{Label: "Workout Templates", Page: "trainer_workout_templates"},
			{Label: "Client Programs", Page: "trainer_client_programs"},
			{Label: "Client Logs & Feedback", Page: "trainer_client_logs"},
		},
		"client": {
			{Label: "Client Home", Page: "Client_home", Icon: "🙋"},
			{Label: "Dashboard", Page: "client_dashboard", Icon: "📊"},
			{Label: "Log Workout", Page: "client_log_workout", Icon: "✍️"},
			{Label: "My Program", Page: "client_my_program", Icon: "🎯"},
		},
	}
)

// LinksFor composes the sidebar for a persona. Unknown roles get just the
// general links; navigation is advisory, not an access control.
func LinksFor(role string) []models.NavLink {
	links := make([]models.NavLink, 0, len(generalLinks)+len(roleLinks[role]))
	links = append(links, generalLinks[0])
	links = append(links, roleLinks[role]...)
	links = append(links, generalLinks[1])
	return links
}

// GetNavigation resolves the persona from the role query parameter, falling
// back to the request session.
func GetNavigation(c *fiber.Ctx) error {
	role := c.Query("role")
	if role == "" {
		role = middleware.SessionFrom(c).Role
	}
	return c.JSON(fiber.Map{"role": role, "links": LinksFor(role)})
}
