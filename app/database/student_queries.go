package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/manojgangula07/fee-receipt-manager1/app/ledger"
	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

// StudentFilters represents filtering options for student listings.
type StudentFilters struct {
	Search    string
	Grade     string
	Section   string
	Status    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

const studentColumns = `id, admission_number, first_name, last_name, grade, section, roll_number,
	guardian_name, guardian_phone, fee_category, route_id, admission_date, is_active, created_at, updated_at`

func scanStudent(scanner interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	err := scanner.Scan(
		&s.ID, &s.AdmissionNumber, &s.FirstName, &s.LastName, &s.Grade, &s.Section, &s.RollNumber,
		&s.GuardianName, &s.GuardianPhone, &s.FeeCategory, &s.RouteID, &s.AdmissionDate,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent inserts the student and generates its initial fee dues from
// the fee structure catalog in a single transaction. Generation is idempotent
// per (student, feeType, period) via the unique index.
func CreateStudent(db *sql.DB, student *models.Student) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if student.Section == "" {
		student.Section = "A"
	}
	if student.AdmissionDate.IsZero() {
		student.AdmissionDate = time.Now()
	}

	query := `INSERT INTO students (admission_number, first_name, last_name, grade, section, roll_number,
			  guardian_name, guardian_phone, fee_category, route_id, admission_date, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRow(query,
		student.AdmissionNumber, student.FirstName, student.LastName, student.Grade, student.Section,
		student.RollNumber, student.GuardianName, student.GuardianPhone, student.FeeCategory,
		student.RouteID, student.AdmissionDate,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert student: %v", err)
	}
	student.IsActive = true

	if _, err := generateDuesTx(tx, student, time.Now()); err != nil {
		return err
	}

	return tx.Commit()
}

// GenerateDuesForStudent re-runs due generation for an existing student, used
// when a billing period advances. Already-generated periods are skipped.
func GenerateDuesForStudent(db *sql.DB, studentID int64, now time.Time) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	student, err := getStudentTx(tx, studentID)
	if err != nil {
		return 0, err
	}

	created, err := generateDuesTx(tx, student, now)
	if err != nil {
		return 0, err
	}

	return created, tx.Commit()
}

func getStudentTx(tx *sql.Tx, studentID int64) (*models.Student, error) {
	row := tx.QueryRow(`SELECT `+studentColumns+` FROM students WHERE id = $1`, studentID)
	return scanStudent(row)
}

func generateDuesTx(tx *sql.Tx, student *models.Student, now time.Time) (int, error) {
	items, err := feeStructureForGradeTx(tx, student.Grade)
	if err != nil {
		return 0, fmt.Errorf("failed to load fee structure: %v", err)
	}

	var route *models.TransportationRoute
	if student.RouteID != nil {
		route = &models.TransportationRoute{}
		err := tx.QueryRow(`SELECT id, name, monthly_fare, is_active FROM transportation_routes WHERE id = $1`,
			*student.RouteID).Scan(&route.ID, &route.Name, &route.MonthlyFare, &route.IsActive)
		if err == sql.ErrNoRows {
			route = nil
		} else if err != nil {
			return 0, err
		}
	}

	dues := ledger.GenerateDues(student, items, route, now)
	created := 0
	for _, due := range dues {
		res, err := tx.Exec(`INSERT INTO fee_dues (student_id, fee_type, description, period, amount, amount_paid, status, due_date, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			ON CONFLICT (student_id, fee_type, period) DO NOTHING`,
			due.StudentID, due.FeeType, due.Description, due.Period,
			due.Amount, due.AmountPaid, due.Status, due.DueDate)
		if err != nil {
			return 0, fmt.Errorf("failed to insert fee due: %v", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			created++
		}
	}
	return created, nil
}

func GetStudentByID(db *sql.DB, studentID int64) (*models.Student, error) {
	row := db.QueryRow(`SELECT `+studentColumns+` FROM students WHERE id = $1`, studentID)
	student, err := scanStudent(row)
	if err != nil {
		return nil, err
	}

	if student.RouteID != nil {
		route, err := GetRouteByID(db, *student.RouteID)
		if err == nil {
			student.Route = route
		}
	}
	return student, nil
}

// GetStudents lists students with optional filtering and pagination,
// returning the total count before pagination.
func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(`(
			LOWER(first_name) LIKE $%d
			OR LOWER(last_name) LIKE $%d
			OR LOWER(CONCAT(first_name, ' ', last_name)) LIKE $%d
			OR LOWER(admission_number) LIKE $%d
		)`, argIndex, argIndex, argIndex, argIndex))
		args = append(args, pattern)
		argIndex++
	}
	if filters.Grade != "" {
		conditions = append(conditions, fmt.Sprintf("grade = $%d", argIndex))
		args = append(args, filters.Grade)
		argIndex++
	}
	if filters.Section != "" {
		conditions = append(conditions, fmt.Sprintf("section = $%d", argIndex))
		args = append(args, filters.Section)
		argIndex++
	}
	switch filters.Status {
	case "active":
		conditions = append(conditions, "is_active = true")
	case "inactive":
		conditions = append(conditions, "is_active = false")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := "admission_number"
	switch filters.SortBy {
	case "name":
		orderBy = "first_name, last_name"
	case "grade":
		orderBy = "grade, section, roll_number"
	case "admission_date":
		orderBy = "admission_date"
	}
	if strings.EqualFold(filters.SortOrder, "desc") {
		orderBy += " DESC"
	}

	query := `SELECT ` + studentColumns + ` FROM students` + where + ` ORDER BY ` + orderBy
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, total, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			continue
		}
		students = append(students, student)
	}
	if students == nil {
		students = []*models.Student{}
	}

	return students, total, nil
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET first_name = $1, last_name = $2, grade = $3, section = $4, roll_number = $5,
			      guardian_name = $6, guardian_phone = $7, fee_category = $8, route_id = $9,
			      is_active = $10, updated_at = NOW()
			  WHERE id = $11`

	result, err := db.Exec(query,
		student.FirstName, student.LastName, student.Grade, student.Section, student.RollNumber,
		student.GuardianName, student.GuardianPhone, student.FeeCategory, student.RouteID,
		student.IsActive, student.ID)
	if err != nil {
		return fmt.Errorf("failed to update student: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteStudent removes the student record. Dues and receipts are not
// cascaded; reports resolve missing students as "Unknown".
func DeleteStudent(db *sql.DB, studentID int64) error {
	result, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetStudentsStats returns headline numbers for the students page.
func GetStudentsStats(db *sql.DB) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var total, active, newThisMonth int
	db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&total)
	db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true`).Scan(&active)
	db.QueryRow(`SELECT COUNT(*) FROM students WHERE created_at >= date_trunc('month', CURRENT_DATE)`).Scan(&newThisMonth)

	stats["total_students"] = total
	stats["active_students"] = active
	stats["new_this_month"] = newThisMonth
	return stats, nil
}
