package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/manojgangula07/fee-receipt-manager1/app/ledger"
	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

const feeStructureColumns = `id, grade, fee_type, amount, frequency, due_day, is_active, created_at, updated_at`

func scanFeeStructureItem(scanner interface{ Scan(...interface{}) error }) (*models.FeeStructureItem, error) {
	item := &models.FeeStructureItem{}
	err := scanner.Scan(
		&item.ID, &item.Grade, &item.FeeType, &item.Amount, &item.Frequency,
		&item.DueDay, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func CreateFeeStructureItem(db *sql.DB, item *models.FeeStructureItem) error {
	query := `INSERT INTO fee_structure_items (grade, fee_type, amount, frequency, due_day, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, item.Grade, item.FeeType, item.Amount, item.Frequency, item.DueDay).Scan(
		&item.ID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create fee structure item: %v", err)
	}
	item.IsActive = true
	return nil
}

// GetFeeStructureItems lists the catalog, optionally restricted to one grade.
func GetFeeStructureItems(db *sql.DB, grade string) ([]*models.FeeStructureItem, error) {
	query := `SELECT ` + feeStructureColumns + ` FROM fee_structure_items`
	var args []interface{}
	if grade != "" {
		query += ` WHERE grade = $1`
		args = append(args, grade)
	}
	query += ` ORDER BY grade, fee_type`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.FeeStructureItem
	for rows.Next() {
		item, err := scanFeeStructureItem(rows)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	if items == nil {
		items = []*models.FeeStructureItem{}
	}
	return items, nil
}

func GetFeeStructureItemByID(db *sql.DB, id int64) (*models.FeeStructureItem, error) {
	row := db.QueryRow(`SELECT `+feeStructureColumns+` FROM fee_structure_items WHERE id = $1`, id)
	return scanFeeStructureItem(row)
}

func UpdateFeeStructureItem(db *sql.DB, item *models.FeeStructureItem) error {
	query := `UPDATE fee_structure_items
			  SET grade = $1, fee_type = $2, amount = $3, frequency = $4, due_day = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7`

	result, err := db.Exec(query, item.Grade, item.FeeType, item.Amount, item.Frequency,
		item.DueDay, item.IsActive, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update fee structure item: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteFeeStructureItem(db *sql.DB, id int64) error {
	result, err := db.Exec(`DELETE FROM fee_structure_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fee structure item: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func feeStructureForGradeTx(tx *sql.Tx, grade string) ([]*models.FeeStructureItem, error) {
	rows, err := tx.Query(`SELECT `+feeStructureColumns+` FROM fee_structure_items
		WHERE grade = $1 AND is_active = true ORDER BY fee_type`, grade)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.FeeStructureItem
	for rows.Next() {
		item, err := scanFeeStructureItem(rows)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// DueFilters represents filtering options for fee due listings.
type DueFilters struct {
	StudentID int64
	Status    string
}

const feeDueColumns = `id, student_id, fee_type, description, period, amount, amount_paid, status, due_date, created_at, updated_at`

func scanFeeDue(scanner interface{ Scan(...interface{}) error }) (*models.FeeDue, error) {
	d := &models.FeeDue{}
	err := scanner.Scan(
		&d.ID, &d.StudentID, &d.FeeType, &d.Description, &d.Period,
		&d.Amount, &d.AmountPaid, &d.Status, &d.DueDate, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func GetDues(db *sql.DB, filters DueFilters) ([]*models.FeeDue, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.StudentID != 0 {
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", argIndex))
		args = append(args, filters.StudentID)
		argIndex++
	}
	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filters.Status)
		argIndex++
	}

	query := `SELECT ` + feeDueColumns + ` FROM fee_dues`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY due_date, id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dues []*models.FeeDue
	for rows.Next() {
		due, err := scanFeeDue(rows)
		if err != nil {
			continue
		}
		dues = append(dues, due)
	}
	if dues == nil {
		dues = []*models.FeeDue{}
	}
	return dues, nil
}

func GetDueByID(db *sql.DB, id int64) (*models.FeeDue, error) {
	row := db.QueryRow(`SELECT `+feeDueColumns+` FROM fee_dues WHERE id = $1`, id)
	return scanFeeDue(row)
}

// SweepOverdue moves every unpaid or partially paid due past its due date to
// overdue. Safe to run repeatedly; paid dues are never touched.
func SweepOverdue(db *sql.DB, now time.Time) (int64, error) {
	result, err := db.Exec(`UPDATE fee_dues SET status = $1, updated_at = NOW()
		WHERE status = ANY($2) AND due_date < $3`,
		models.DueStatusOverdue,
		pq.Array([]string{string(models.DueStatusDue), string(models.DueStatusPartial)}),
		now)
	if err != nil {
		return 0, fmt.Errorf("overdue sweep failed: %v", err)
	}
	return result.RowsAffected()
}

// GetDefaulters returns every due or overdue fee due joined with the owning
// student's display fields. Partial dues are excluded by long-standing
// reporting convention; students that no longer resolve read "Unknown".
func GetDefaulters(db *sql.DB) ([]ledger.DefaulterRow, error) {
	statuses := make([]string, len(ledger.DefaulterStatuses))
	for i, s := range ledger.DefaulterStatuses {
		statuses[i] = string(s)
	}

	query := `SELECT d.id, d.student_id,
			  COALESCE(NULLIF(TRIM(CONCAT(s.first_name, ' ', s.last_name)), ''), 'Unknown'),
			  COALESCE(s.admission_number, 'Unknown'),
			  COALESCE(s.grade, 'Unknown'),
			  d.fee_type, d.period, d.amount, d.amount_paid, d.status, d.due_date
			  FROM fee_dues d
			  LEFT JOIN students s ON d.student_id = s.id
			  WHERE d.status = ANY($1)
			  ORDER BY d.due_date, d.id`

	rows, err := db.Query(query, pq.Array(statuses))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defaulters []ledger.DefaulterRow
	for rows.Next() {
		var row ledger.DefaulterRow
		err := rows.Scan(
			&row.DueID, &row.StudentID, &row.StudentName, &row.AdmissionNumber, &row.Grade,
			&row.FeeType, &row.Period, &row.Amount, &row.AmountPaid, &row.Status, &row.DueDate,
		)
		if err != nil {
			continue
		}
		defaulters = append(defaulters, row)
	}
	if defaulters == nil {
		defaulters = []ledger.DefaulterRow{}
	}
	return defaulters, nil
}

// GetDueStats returns the headline collection numbers for the dashboard.
func GetDueStats(db *sql.DB) (map[string]interface{}, error) {
	query := `
		SELECT
			COUNT(*) as total_dues,
			COUNT(CASE WHEN status = 'paid' THEN 1 END) as paid_dues,
			COUNT(CASE WHEN status IN ('due', 'overdue') THEN 1 END) as open_dues,
			COALESCE(SUM(amount_paid), 0) as total_collected,
			COALESCE(SUM(amount - amount_paid), 0) as total_outstanding
		FROM fee_dues
	`

	var totalDues, paidDues, openDues int
	var totalCollected, totalOutstanding float64
	err := db.QueryRow(query).Scan(&totalDues, &paidDues, &openDues, &totalCollected, &totalOutstanding)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"total_dues":        totalDues,
		"paid_dues":         paidDues,
		"open_dues":         openDues,
		"total_collected":   totalCollected,
		"total_outstanding": totalOutstanding,
	}, nil
}
