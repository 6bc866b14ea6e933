package middleware

import (
	"net/url"
	"time"

	"quill/internal/models"
	"quill/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Cookie names shared between middleware and handlers.
const (
	SessionCookie = "quill_session"
	FlashCookie   = "quill_flash"
)

// userKey is the fiber.Ctx Locals key holding the resolved *models.User.
const userKey = "user"

// LoadUser resolves the session cookie to a user on every request and stores
// it in the request locals. Missing, expired or garbage tokens resolve to
// anonymous; this middleware never fails a request.
func LoadUser(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := c.Cookies(SessionCookie); token != "" {
			if user := authService.CurrentUser(token); user != nil {
				c.Locals(userKey, user)
			}
		}
		return c.Next()
	}
}

// RequireAuth redirects anonymous requests to the login page with a flash
// message. Must run after LoadUser.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserFromCtx(c) == nil {
			SetFlash(c, "Please log in first")
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}

// UserFromCtx returns the user resolved by LoadUser, or nil for anonymous.
func UserFromCtx(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}

// SetFlash stores a one-shot notice shown on the next rendered page.
// The value is query-escaped: cookie values may not contain spaces.
func SetFlash(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     FlashCookie,
		Value:    url.QueryEscape(message),
		Expires:  time.Now().Add(5 * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// PopFlash returns the pending flash message, clearing it so it renders
// exactly once.
func PopFlash(c *fiber.Ctx) string {
	message, err := url.QueryUnescape(c.Cookies(FlashCookie))
	if err != nil {
		message = ""
	}
	if message != "" {
		c.Cookie(&fiber.Cookie{
			Name:     FlashCookie,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})
	}
	return message
}
