package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/manojgangula07/fee-receipt-manager1/app/config"
	"github.com/manojgangula07/fee-receipt-manager1/app/database"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/auth"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/dashboard"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/fees"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/receipts"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/reports"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/settings"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/students"
	"github.com/manojgangula07/fee-receipt-manager1/app/routes/transport"
	"github.com/manojgangula07/fee-receipt-manager1/app/services"
)

// customErrorHandler renders every unhandled error as the standard JSON envelope.
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to Indian Standard Time
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Kolkata location, falling back to UTC+5:30: %v", err)
		time.Local = time.FixedZone("IST", 5*60*60+30*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Load environment and initialize database
	config.Load()
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Fee Receipt Manager",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup fee structure and dues routes
	fees.SetupFeesRoutes(app)

	// Setup receipts routes
	receipts.SetupReceiptsRoutes(app)

	// Setup transportation routes
	transport.SetupTransportRoutes(app)

	// Setup settings routes
	settings.SetupSettingsRoutes(app)

	// Setup reports routes
	reports.SetupReportsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	addr := config.Port()
	log.Println("Server starting on " + addr)
	log.Fatal(app.Listen(addr))
}
