package receipts

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/database"
	"github.com/manojgangula07/fee-receipt-manager1/app/exports"
	"github.com/manojgangula07/fee-receipt-manager1/app/helpers"
	"github.com/manojgangula07/fee-receipt-manager1/app/ledger"
)

// IssueReceiptAPI issues a receipt against one or more of a student's fee
// dues. The whole request succeeds or fails as a unit: any invalid line
// rejects the receipt and leaves every due untouched.
func IssueReceiptAPI(c *fiber.Ctx, db *sql.DB) error {
	var req database.IssueReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if err := helpers.ValidateStruct(req); err != nil {
		return helpers.ValidationError(c, err)
	}

	receipt, err := database.IssueReceipt(db, req)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
		}
		var lineErr *ledger.LineError
		if errors.As(err, &lineErr) {
			return c.Status(422).JSON(fiber.Map{
				"success":    false,
				"error":      lineErr.Reason,
				"fee_due_id": lineErr.FeeDueID,
			})
		}
		if err == ledger.ErrNoLines {
			return c.Status(422).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to issue receipt"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": receipt})
}

// GetReceiptsAPI lists receipts, newest first (?student_id= to filter).
func GetReceiptsAPI(c *fiber.Ctx, db *sql.DB) error {
	receipts, err := database.GetReceipts(db, int64(c.QueryInt("student_id", 0)))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch receipts"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"receipts": receipts,
			"count":    len(receipts),
		},
	})
}

func GetReceiptByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid receipt ID"})
	}

	receipt, err := database.GetReceiptWithItems(db, int64(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Receipt not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch receipt"})
	}

	return c.JSON(fiber.Map{"success": true, "data": receipt})
}

// DownloadReceiptPDFAPI renders the printable receipt.
func DownloadReceiptPDFAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid receipt ID"})
	}

	receipt, err := database.GetReceiptWithItems(db, int64(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Receipt not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch receipt"})
	}

	student, err := database.GetStudentByID(db, receipt.StudentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch student"})
	}

	settings, err := database.GetSettings(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch settings"})
	}

	pdf, err := exports.ReceiptPDF(settings, student, receipt)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to render receipt"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+receipt.ReceiptNumber+`.pdf"`)
	return c.Send(pdf)
}
