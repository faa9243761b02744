package helpers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct runs the shared validator over a request struct.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidationError renders a 400 with a field-level error map when err is a
// validator.ValidationErrors, or a generic bad-request message otherwise.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	fields := make(map[string]string)
	for _, fieldErr := range ve {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed",
		"fields":  fields,
	})
}
