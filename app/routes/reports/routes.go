package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/config"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/auth"
)

func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/defaulters", func(c *fiber.Ctx) error {
		return DefaultersReportAPI(c, config.GetDB())
	})

	api.Get("/collections", func(c *fiber.Ctx) error {
		return CollectionsReportAPI(c, config.GetDB())
	})
}
