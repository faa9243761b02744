package students

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"github.com/manojgangula07/fee-receipt-manager1/app/config"
	"github.com/manojgangula07/fee-receipt-manager1/app/database"
	"github.com/manojgangula07/fee-receipt-manager1/app/exports"
	"github.com/manojgangula07/fee-receipt-manager1/app/helpers"
	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:    c.Query("search"),
		Grade:     c.Query("grade"),
		Section:   c.Query("section"),
		Status:    c.Query("status"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Limit:     c.QueryInt("limit", 0),
		Offset:    c.QueryInt("offset", 0),
	}

	students, totalCount, err := database.GetStudents(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"students":    students,
			"count":       len(students),
			"total_count": totalCount,
		},
	})
}

// GetStudentsStatsAPI returns headline numbers for the students page.
func GetStudentsStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetStudentsStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch students statistics"})
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid student ID"})
	}

	student, err := database.GetStudentByID(config.GetDB(), int64(studentID))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch student"})
	}

	return c.JSON(fiber.Map{"success": true, "data": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	student := &models.Student{}
	if err := c.BodyParser(student); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if err := helpers.ValidateStruct(student); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "Admission number already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": student})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid student ID"})
	}

	existing, err := database.GetStudentByID(config.GetDB(), int64(studentID))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch student"})
	}

	if err := c.BodyParser(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	existing.ID = int64(studentID)

	if err := helpers.ValidateStruct(existing); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := database.UpdateStudent(config.GetDB(), existing); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"success": true, "data": existing})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid student ID"})
	}

	if err := database.DeleteStudent(config.GetDB(), int64(studentID)); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"message": "Student deleted"}})
}

// GenerateDuesAPI re-runs due generation for a student, e.g. after the billing
// period has advanced. Already-generated periods are skipped.
func GenerateDuesAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid student ID"})
	}

	created, err := database.GenerateDuesForStudent(config.GetDB(), int64(studentID), time.Now())
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate dues"})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"created": created}})
}

// ExportStudentsAPI downloads the filtered student list as an .xlsx workbook.
func ExportStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:  c.Query("search"),
		Grade:   c.Query("grade"),
		Section: c.Query("section"),
		Status:  c.Query("status"),
	}

	students, _, err := database.GetStudents(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch students"})
	}

	f, err := exports.StudentsWorkbook(students)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to build workbook"})
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to build workbook"})
	}

	filename := fmt.Sprintf("students-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// ImportStudentsAPI bulk-creates students from an uploaded .xlsx workbook.
// Malformed rows and duplicate admission numbers are skipped and counted.
func ImportStudentsAPI(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Missing file upload"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Could not open upload"})
	}
	defer file.Close()

	students, skipped, err := exports.ParseStudentsWorkbook(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	created := 0
	failed := skipped
	for _, student := range students {
		if err := database.CreateStudent(config.GetDB(), student); err != nil {
			failed++
			continue
		}
		created++
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"created": created,
			"skipped": failed,
		},
	})
}
