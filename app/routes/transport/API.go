package transport

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/manojgangula07/fee-receipt-manager1/app/database"
	"github.com/manojgangula07/fee-receipt-manager1/app/helpers"
	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

func GetRoutesAPI(c *fiber.Ctx, db *sql.DB) error {
	routes, err := database.GetRoutes(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch routes"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"routes": routes,
			"count":  len(routes),
		},
	})
}

func GetRouteByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid route ID"})
	}

	route, err := database.GetRouteByID(db, int64(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Route not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch route"})
	}

	return c.JSON(fiber.Map{"success": true, "data": route})
}

func CreateRouteAPI(c *fiber.Ctx, db *sql.DB) error {
	route := &models.TransportationRoute{}
	if err := c.BodyParser(route); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if err := helpers.ValidateStruct(route); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := database.CreateRoute(db, route); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create route"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": route})
}

func UpdateRouteAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid route ID"})
	}

	existing, err := database.GetRouteByID(db, int64(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Route not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch route"})
	}

	if err := c.BodyParser(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	existing.ID = int64(id)

	if err := helpers.ValidateStruct(existing); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := database.UpdateRoute(db, existing); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Route not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update route"})
	}

	return c.JSON(fiber.Map{"success": true, "data": existing})
}

// DeleteRouteAPI removes a route. A route still assigned to students cannot
// be deleted and returns 409.
func DeleteRouteAPI(c *fiber.Ctx, db *sql.DB) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid route ID"})
	}

	if err := database.DeleteRoute(db, int64(id)); err != nil {
		if err == database.ErrRouteInUse {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Route not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete route"})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"message": "Route deleted"}})
}
