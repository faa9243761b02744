package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)                    // List students with filters
	api.Get("/stats", GetStudentsStatsAPI)          // Get students statistics
	api.Get("/export", ExportStudentsAPI)           // Download students as .xlsx
	api.Post("/import", ImportStudentsAPI)          // Upload students from .xlsx
	api.Get("/:id", GetStudentByIDAPI)              // Get single student by ID
	api.Post("/", CreateStudentAPI)                 // Create new student
	api.Put("/:id", UpdateStudentAPI)               // Update existing student
	api.Delete("/:id", DeleteStudentAPI)            // Delete student
	api.Post("/:id/generate-dues", GenerateDuesAPI) // Re-run due generation
}
