package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/config"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/auth"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetSettingsAPI(c, config.GetDB())
	})

	api.Put("/", func(c *fiber.Ctx) error {
		return UpdateSettingsAPI(c, config.GetDB())
	})
}
