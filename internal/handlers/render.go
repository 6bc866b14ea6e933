package handlers

import (
	"fmt"
	"time"

	"quill/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// viewData merges per-page data with the fields every template expects:
// the resolved user, any pending flash message and the footer year. Handlers
// that re-render a form in the same response set "Flash" in data directly
// instead of going through the flash cookie.
func viewData(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["User"]; !ok {
		data["User"] = middleware.UserFromCtx(c)
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = middleware.PopFlash(c)
	}
	data["Year"] = time.Now().Year()
	return data
}

// formErrors flattens validator errors into per-field messages for the
// templates.
func formErrors(err error) map[string]string {
	messages := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["form"] = "Invalid form submission"
		return messages
	}
	for _, e := range validationErrors {
		messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' rule", e.Field(), e.Tag())
	}
	return messages
}
