package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ranya1958/FitFlow/internal/models"
)

const sessionKey = "session"

// WithSession decodes the client-supplied identity headers into a Session
// local. The values are trusted as-is: the API performs no authentication,
// and the session exists so handlers receive identity explicitly instead of
// reading ambient state.
func WithSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := models.Session{Role: c.Get("X-User-Role")}
		if userID, err := strconv.ParseInt(c.Get("X-User-ID"), 10, 64); err == nil {
			session.UserID = userID
		}
		c.Locals(sessionKey, session)
		return c.Next()
	}
}

// SessionFrom returns the request's session, zero-valued when the headers
// were absent.
func SessionFrom(c *fiber.Ctx) models.Session {
	session, _ := c.Locals(sessionKey).(models.Session)
	return session
}
