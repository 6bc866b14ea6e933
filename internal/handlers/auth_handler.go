package handlers

import (
	"errors"
	"log"
	"time"

	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the registration, login and logout pages.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/register", h.ShowRegister)
	router.Post("/register", h.HandleRegister)
	router.Get("/login", h.ShowLogin)
	router.Post("/login", h.HandleLogin)
	router.Get("/logout", h.HandleLogout)
}

// ShowRegister renders the sign-up form.
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return c.Render("register", viewData(c, fiber.Map{"Form": models.RegisterForm{}}))
}

// HandleRegister creates a new account and signs the user in. A duplicate
// email flashes a notice and redirects to the login page.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var form models.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing register form: %v", err)
		return c.Status(fiber.StatusBadRequest).Render("register", viewData(c, fiber.Map{
			"Form":   form,
			"Errors": map[string]string{"form": "Invalid form submission"},
		}))
	}

	if err := h.validate.Struct(form); err != nil {
		return c.Render("register", viewData(c, fiber.Map{
			"Form":   form,
			"Errors": formErrors(err),
		}))
	}

	_, token, err := h.authService.Register(form.Email, form.Password, form.Name)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			middleware.SetFlash(c, "There already exists a user with this email address")
			return c.Redirect("/login", fiber.StatusFound)
		}
		log.Printf("Error registering user: %v", err)
		return fiber.ErrInternalServerError
	}

	h.setSessionCookie(c, token)
	return c.Redirect("/", fiber.StatusFound)
}

// ShowLogin renders the sign-in form.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("login", viewData(c, fiber.Map{"Form": models.LoginForm{}}))
}

// HandleLogin authenticates the user. The unknown-email and wrong-password
// cases re-render the form with their two distinct messages.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var form models.LoginForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing login form: %v", err)
		return c.Status(fiber.StatusBadRequest).Render("login", viewData(c, fiber.Map{
			"Form":   form,
			"Errors": map[string]string{"form": "Invalid form submission"},
		}))
	}

	if err := h.validate.Struct(form); err != nil {
		return c.Render("login", viewData(c, fiber.Map{
			"Form":   form,
			"Errors": formErrors(err),
		}))
	}

	_, token, err := h.authService.Login(form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			return c.Render("login", viewData(c, fiber.Map{
				"Form":  form,
				"Flash": "No user found with this email address",
			}))
		case errors.Is(err, models.ErrInvalidPassword):
			return c.Render("login", viewData(c, fiber.Map{
				"Form":  form,
				"Flash": "Invalid password",
			}))
		default:
			log.Printf("Error during login for %s: %v", form.Email, err)
			return fiber.ErrInternalServerError
		}
	}

	h.setSessionCookie(c, token)
	return c.Redirect("/", fiber.StatusFound)
}

// HandleLogout clears the session cookie and redirects home. Clearing an
// absent cookie is a no-op, so logout is idempotent.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.Redirect("/", fiber.StatusFound)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.authService.SessionDuration()),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}
