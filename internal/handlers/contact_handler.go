package handlers

import (
	"log"

	"quill/internal/models"
	"quill/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles the contact and about pages.
type ContactHandler struct {
	contactService *services.ContactService
	validate       *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the contact routes with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/contact", h.ShowContact)
	router.Post("/contact", h.HandleContact)
	router.Get("/about", h.ShowAbout)
}

// ShowContact renders the empty contact form.
func (h *ContactHandler) ShowContact(c *fiber.Ctx) error {
	return c.Render("contact", viewData(c, fiber.Map{"Form": models.ContactForm{}}))
}

// HandleContact relays the submission by mail. On success the form comes
// back cleared with a sent banner; a relay failure re-renders the filled
// form with a notice instead of failing the request.
func (h *ContactHandler) HandleContact(c *fiber.Ctx) error {
	var form models.ContactForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing contact form: %v", err)
		return c.Status(fiber.StatusBadRequest).Render("contact", viewData(c, fiber.Map{
			"Form":   form,
			"Errors": map[string]string{"form": "Invalid form submission"},
		}))
	}
	if err := h.validate.Struct(form); err != nil {
		return c.Render("contact", viewData(c, fiber.Map{
			"Form":   form,
			"Errors": formErrors(err),
		}))
	}

	if err := h.contactService.Relay(form.Name, form.Email, form.Message); err != nil {
		log.Printf("Contact relay failed: %v", err)
		return c.Render("contact", viewData(c, fiber.Map{
			"Form":  form,
			"Flash": "Your message could not be sent, please try again later",
		}))
	}

	return c.Render("contact", viewData(c, fiber.Map{
		"Form": models.ContactForm{},
		"Sent": true,
	}))
}

// ShowAbout renders the static about page.
func (h *ContactHandler) ShowAbout(c *fiber.Ctx) error {
	return c.Render("about", viewData(c, nil))
}
