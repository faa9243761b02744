package receipts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/config"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/auth"
)

func SetupReceiptsRoutes(app *fiber.App) {
	api := app.Group("/api/receipts")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetReceiptsAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return IssueReceiptAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetReceiptByIDAPI(c, config.GetDB())
	})

	api.Get("/:id/pdf", func(c *fiber.Ctx) error {
		return DownloadReceiptPDFAPI(c, config.GetDB())
	})
}
