package fees

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/database"
)

// GetDuesAPI lists fee dues filtered by student (?student_id=) and/or
// status (?status=due).
func GetDuesAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.DueFilters{
		StudentID: int64(c.QueryInt("student_id", 0)),
		Status:    c.Query("status"),
	}

	dues, err := database.GetDues(db, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch dues"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"dues":  dues,
			"count": len(dues),
		},
	})
}

func GetDueByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid due ID"})
	}

	due, err := database.GetDueByID(db, int64(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Fee due not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch fee due"})
	}

	return c.JSON(fiber.Map{"success": true, "data": due})
}

// GetDueStatsAPI returns the headline collection numbers for the dashboard.
func GetDueStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDueStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch due statistics"})
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// GetDefaultersAPI lists every student with a due or overdue fee due.
// Partially paid dues do not appear here.
func GetDefaultersAPI(c *fiber.Ctx, db *sql.DB) error {
	defaulters, err := database.GetDefaulters(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch defaulters"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"defaulters": defaulters,
			"count":      len(defaulters),
		},
	})
}

// SweepOverdueAPI marks unpaid dues past their due date as overdue. The
// scheduler runs the same sweep nightly; this endpoint forces it on demand.
func SweepOverdueAPI(c *fiber.Ctx, db *sql.DB) error {
	updated, err := database.SweepOverdue(db, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to sweep overdue dues"})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"updated": updated}})
}
