package reports

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/database"
	"github.com/manojgangula07/fee-receipt-manager1/app/exports"
)

// DefaultersReportAPI downloads the defaulter list as an .xlsx workbook.
func DefaultersReportAPI(c *fiber.Ctx, db *sql.DB) error {
	defaulters, err := database.GetDefaulters(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch defaulters"})
	}

	f, err := exports.DefaultersWorkbook(defaulters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to build workbook"})
	}

	filename := fmt.Sprintf("defaulters-%s.xlsx", time.Now().Format("2006-01-02"))
	return sendWorkbook(c, f, filename)
}

// CollectionsReportAPI downloads the collection summary for a date range
// (?from=2026-04-01&to=2026-04-30, defaulting to the current month).
func CollectionsReportAPI(c *fiber.Ctx, db *sql.DB) error {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid from date, expected YYYY-MM-DD"})
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid to date, expected YYYY-MM-DD"})
		}
		// Inclusive upper bound
		to = parsed.AddDate(0, 0, 1)
	}

	summary, err := database.GetCollectionSummary(db, from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch collection summary"})
	}

	f, err := exports.CollectionWorkbook(summary, from, to.AddDate(0, 0, -1))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to build workbook"})
	}

	filename := fmt.Sprintf("collections-%s.xlsx", now.Format("2006-01-02"))
	return sendWorkbook(c, f, filename)
}

func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to build workbook"})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
