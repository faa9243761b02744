package settings

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/database"
	"github.com/manojgangula07/fee-receipt-manager1/app/helpers"
)

// GetSettingsAPI returns the school profile used on receipts.
func GetSettingsAPI(c *fiber.Ctx, db *sql.DB) error {
	settings, err := database.GetSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch settings"})
	}

	return c.JSON(fiber.Map{"success": true, "data": settings})
}

// UpdateSettingsAPI replaces the school profile wholesale. Changing the
// receipt prefix only affects receipts issued afterwards.
func UpdateSettingsAPI(c *fiber.Ctx, db *sql.DB) error {
	settings, err := database.GetSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch settings"})
	}

	if err := c.BodyParser(settings); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if err := helpers.ValidateStruct(settings); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := database.UpdateSettings(db, settings); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update settings"})
	}

	return c.JSON(fiber.Map{"success": true, "data": settings})
}
