package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/config"
	"github.com/manojgangula07/fee-receipt-manager1/app/database"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", GetDashboardStatsAPI)
}

// GetDashboardStatsAPI returns the combined student and collection numbers
// for the landing page.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	studentStats, err := database.GetStudentsStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch dashboard statistics"})
	}

	dueStats, err := database.GetDueStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch dashboard statistics"})
	}

	stats := make(map[string]interface{}, len(studentStats)+len(dueStats))
	for k, v := range studentStats {
		stats[k] = v
	}
	for k, v := range dueStats {
		stats[k] = v
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}
