package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/config"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/auth"
)

// SetupFeesRoutes sets up the fee structure catalog and fee due routes.
func SetupFeesRoutes(app *fiber.App) {
	structureAPI := app.Group("/api/fee-structure")
	structureAPI.Use(auth.AuthMiddleware)

	structureAPI.Get("/", func(c *fiber.Ctx) error {
		return GetFeeStructureAPI(c, config.GetDB())
	})

	structureAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetFeeStructureItemAPI(c, config.GetDB())
	})

	structureAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeStructureItemAPI(c, config.GetDB())
	})

	structureAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateFeeStructureItemAPI(c, config.GetDB())
	})

	structureAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeStructureItemAPI(c, config.GetDB())
	})

	duesAPI := app.Group("/api/dues")
	duesAPI.Use(auth.AuthMiddleware)

	duesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetDuesAPI(c, config.GetDB())
	})

	duesAPI.Get("/stats", func(c *fiber.Ctx) error {
		return GetDueStatsAPI(c, config.GetDB())
	})

	duesAPI.Get("/defaulters", func(c *fiber.Ctx) error {
		return GetDefaultersAPI(c, config.GetDB())
	})

	duesAPI.Post("/sweep-overdue", func(c *fiber.Ctx) error {
		return SweepOverdueAPI(c, config.GetDB())
	})

	duesAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetDueByIDAPI(c, config.GetDB())
	})
}
