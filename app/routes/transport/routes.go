package transport

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/config"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/auth"
)

func SetupTransportRoutes(app *fiber.App) {
	api := app.Group("/api/routes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetRoutesAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetRouteByIDAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateRouteAPI(c, config.GetDB())
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateRouteAPI(c, config.GetDB())
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteRouteAPI(c, config.GetDB())
	})
}
