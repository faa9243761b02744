package ledger

import (
	"errors"
	"fmt"

	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

// ErrNoLines is returned when a receipt is issued with no allocation lines.
var ErrNoLines = errors.New("receipt must allocate at least one fee due")

// Line is one requested allocation: an amount to apply against a fee due.
type Line struct {
	FeeDueID int64   `json:"fee_due_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}

// LineError describes why a single allocation line is invalid.
type LineError struct {
	FeeDueID int64
	Reason   string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("fee due %d: %s", e.FeeDueID, e.Reason)
}

// ValidateLines checks every requested allocation against the dues loaded for
// the student before anything is written. Issuance is all-or-nothing: the
// first invalid line rejects the whole receipt.
func ValidateLines(studentID int64, dues map[int64]*models.FeeDue, lines []Line) error {
	if len(lines) == 0 {
		return ErrNoLines
	}
	seen := make(map[int64]bool, len(lines))
	for _, line := range lines {
		due, ok := dues[line.FeeDueID]
		if !ok {
			return &LineError{FeeDueID: line.FeeDueID, Reason: "fee due not found"}
		}
		if due.StudentID != studentID {
			return &LineError{FeeDueID: line.FeeDueID, Reason: "fee due belongs to a different student"}
		}
		if seen[line.FeeDueID] {
			return &LineError{FeeDueID: line.FeeDueID, Reason: "fee due selected more than once"}
		}
		seen[line.FeeDueID] = true
		outstanding := due.Outstanding()
		if outstanding <= 0 {
			return &LineError{FeeDueID: line.FeeDueID, Reason: "fee due is already settled"}
		}
		if line.Amount <= 0 {
			return &LineError{FeeDueID: line.FeeDueID, Reason: "amount must be greater than zero"}
		}
		if line.Amount > outstanding {
			return &LineError{FeeDueID: line.FeeDueID,
				Reason: fmt.Sprintf("amount %.2f exceeds outstanding %.2f", line.Amount, outstanding)}
		}
	}
	return nil
}

// TotalAmount sums the allocation lines of a receipt.
func TotalAmount(lines []Line) float64 {
	var total float64
	for _, line := range lines {
		total += line.Amount
	}
	return total
}

// ReceiptNumber formats a human-readable receipt number from the configured
// prefix, the student's grade and section, and an atomically assigned
// sequence value, zero-padded to four digits.
func ReceiptNumber(prefix, grade, section string, seq int64) string {
	return fmt.Sprintf("%s%s%s%04d", prefix, grade, section, seq)
}
