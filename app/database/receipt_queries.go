package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/manojgangula07/fee-receipt-manager1/app/ledger"
	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

// IssueReceiptRequest carries everything needed to issue one receipt.
type IssueReceiptRequest struct {
	StudentID     int64                `json:"student_id" validate:"required"`
	Lines         []ledger.Line        `json:"lines" validate:"required,min=1,dive"`
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"required,oneof=cash card upi bank_transfer cheque"`
	Date          time.Time            `json:"date"`
	Reference     *string              `json:"reference,omitempty"`
	Remarks       *string              `json:"remarks,omitempty"`
}

// IssueReceipt creates a receipt with its items and applies each allocation
// to the selected fee dues, all inside one transaction. Any invalid line
// aborts the whole receipt; there is no partial issuance. The receipt number
// sequence advances atomically.
func IssueReceipt(db *sql.DB, req IssueReceiptRequest) (*models.Receipt, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	student, err := getStudentTx(tx, req.StudentID)
	if err != nil {
		return nil, err
	}

	dueIDs := make([]int64, len(req.Lines))
	for i, line := range req.Lines {
		dueIDs[i] = line.FeeDueID
	}

	// Lock the selected dues so concurrent issuance cannot double-apply.
	rows, err := tx.Query(`SELECT `+feeDueColumns+` FROM fee_dues WHERE id = ANY($1) FOR UPDATE`,
		pq.Array(dueIDs))
	if err != nil {
		return nil, err
	}
	dues := make(map[int64]*models.FeeDue)
	for rows.Next() {
		due, err := scanFeeDue(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		dues[due.ID] = due
	}
	rows.Close()

	if err := ledger.ValidateLines(student.ID, dues, req.Lines); err != nil {
		return nil, err
	}

	settings, err := getSettingsTx(tx)
	if err != nil {
		return nil, err
	}

	var seq int64
	if err := tx.QueryRow(`SELECT nextval('receipt_number_seq')`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("failed to advance receipt sequence: %v", err)
	}

	receipt := &models.Receipt{
		ReceiptNumber: ledger.ReceiptNumber(settings.ReceiptPrefix, student.Grade, student.Section, seq),
		StudentID:     student.ID,
		Date:          req.Date,
		TotalAmount:   ledger.TotalAmount(req.Lines),
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		Remarks:       req.Remarks,
		Status:        models.ReceiptCompleted,
	}
	if receipt.Date.IsZero() {
		receipt.Date = time.Now()
	}

	err = tx.QueryRow(`INSERT INTO receipts (receipt_number, student_id, date, total_amount, payment_method, reference, remarks, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at`,
		receipt.ReceiptNumber, receipt.StudentID, receipt.Date, receipt.TotalAmount,
		receipt.PaymentMethod, receipt.Reference, receipt.Remarks, receipt.Status,
	).Scan(&receipt.ID, &receipt.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert receipt: %v", err)
	}

	for _, line := range req.Lines {
		due := dues[line.FeeDueID]

		item := &models.ReceiptItem{
			ReceiptID:   receipt.ID,
			FeeDueID:    due.ID,
			FeeType:     due.FeeType,
			Description: due.Description,
			Period:      due.Period,
			Amount:      line.Amount,
		}
		err = tx.QueryRow(`INSERT INTO receipt_items (receipt_id, fee_due_id, fee_type, description, period, amount)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			item.ReceiptID, item.FeeDueID, item.FeeType, item.Description, item.Period, item.Amount,
		).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert receipt item: %v", err)
		}

		if err := ledger.ApplyPayment(due, line.Amount); err != nil {
			return nil, err
		}
		_, err = tx.Exec(`UPDATE fee_dues SET amount_paid = $1, status = $2, updated_at = NOW() WHERE id = $3`,
			due.AmountPaid, due.Status, due.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to update fee due: %v", err)
		}

		receipt.Items = append(receipt.Items, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return receipt, nil
}

const receiptColumns = `id, receipt_number, student_id, date, total_amount, payment_method, reference, remarks, status, created_at`

func scanReceipt(scanner interface{ Scan(...interface{}) error }) (*models.Receipt, error) {
	r := &models.Receipt{}
	err := scanner.Scan(
		&r.ID, &r.ReceiptNumber, &r.StudentID, &r.Date, &r.TotalAmount,
		&r.PaymentMethod, &r.Reference, &r.Remarks, &r.Status, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// GetReceipts lists receipts, newest first, optionally for one student.
func GetReceipts(db *sql.DB, studentID int64) ([]*models.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts`
	var args []interface{}
	if studentID != 0 {
		query += ` WHERE student_id = $1`
		args = append(args, studentID)
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*models.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			continue
		}
		receipts = append(receipts, receipt)
	}
	if receipts == nil {
		receipts = []*models.Receipt{}
	}
	return receipts, nil
}

// GetReceiptWithItems loads one receipt and its allocation lines.
func GetReceiptWithItems(db *sql.DB, receiptID int64) (*models.Receipt, error) {
	row := db.QueryRow(`SELECT `+receiptColumns+` FROM receipts WHERE id = $1`, receiptID)
	receipt, err := scanReceipt(row)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT id, receipt_id, fee_due_id, fee_type, description, period, amount
		FROM receipt_items WHERE receipt_id = $1 ORDER BY id`, receiptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item := &models.ReceiptItem{}
		err := rows.Scan(&item.ID, &item.ReceiptID, &item.FeeDueID, &item.FeeType,
			&item.Description, &item.Period, &item.Amount)
		if err != nil {
			continue
		}
		receipt.Items = append(receipt.Items, item)
	}
	return receipt, nil
}

// CollectionRow is one line of the collection summary report.
type CollectionRow struct {
	FeeType  string  `json:"fee_type"`
	Receipts int     `json:"receipts"`
	Amount   float64 `json:"amount"`
}

// GetCollectionSummary totals receipted amounts per fee type in a date range.
func GetCollectionSummary(db *sql.DB, from, to time.Time) ([]CollectionRow, error) {
	query := `SELECT ri.fee_type, COUNT(DISTINCT r.id), COALESCE(SUM(ri.amount), 0)
			  FROM receipt_items ri
			  JOIN receipts r ON ri.receipt_id = r.id
			  WHERE r.date >= $1 AND r.date < $2 AND r.status = 'completed'
			  GROUP BY ri.fee_type
			  ORDER BY ri.fee_type`

	rows, err := db.Query(query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summary []CollectionRow
	for rows.Next() {
		var row CollectionRow
		if err := rows.Scan(&row.FeeType, &row.Receipts, &row.Amount); err != nil {
			continue
		}
		summary = append(summary, row)
	}
	if summary == nil {
		summary = []CollectionRow{}
	}
	return summary, nil
}
