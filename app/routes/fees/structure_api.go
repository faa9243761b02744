package fees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/database"
	"github.com/manojgangula07/fee-receipt-manager1/app/helpers"
	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

// GetFeeStructureAPI lists the fee catalog, optionally for one grade
// (?grade=5).
func GetFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	items, err := database.GetFeeStructureItems(db, c.Query("grade"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch fee structure"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"items": items,
			"count": len(items),
		},
	})
}

func GetFeeStructureItemAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid fee structure ID"})
	}

	item, err := database.GetFeeStructureItemByID(db, int64(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Fee structure item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch fee structure item"})
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

func CreateFeeStructureItemAPI(c *fiber.Ctx, db *sql.DB) error {
	item := &models.FeeStructureItem{}
	if err := c.BodyParser(item); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if err := helpers.ValidateStruct(item); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := database.CreateFeeStructureItem(db, item); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create fee structure item"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": item})
}

func UpdateFeeStructureItemAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid fee structure ID"})
	}

	existing, err := database.GetFeeStructureItemByID(db, int64(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Fee structure item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch fee structure item"})
	}

	if err := c.BodyParser(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	existing.ID = int64(id)

	if err := helpers.ValidateStruct(existing); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := database.UpdateFeeStructureItem(db, existing); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Fee structure item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update fee structure item"})
	}

	return c.JSON(fiber.Map{"success": true, "data": existing})
}

func DeleteFeeStructureItemAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid fee structure ID"})
	}

	if err := database.DeleteFeeStructureItem(db, int64(id)); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Fee structure item not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete fee structure item"})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"message": "Fee structure item deleted"}})
}
