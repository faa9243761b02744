package ledger

import (
	"fmt"
	"strconv"
	"time"

	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

// TransportFeeType is the fee type used for dues materialized from a student's
// transportation route. Route fares are billed monthly through the ledger so
// transport charges have a single source of truth.
const TransportFeeType = "Transport"

// PeriodLabel returns the billing period label for a frequency at a point in
// time: month name plus year for monthly fees, the bare year otherwise.
func PeriodLabel(freq models.FeeFrequency, now time.Time) string {
	if freq == models.FrequencyMonthly {
		return now.Month().String() + " " + strconv.Itoa(now.Year())
	}
	return strconv.Itoa(now.Year())
}

// ProjectDueDate places the due date on the structure's due day within the
// generation month, clamped to the month's length. A due day outside 1..31
// falls back to the generation date itself.
func ProjectDueDate(now time.Time, dueDay int) time.Time {
	if dueDay < 1 || dueDay > 31 {
		return now
	}
	year, month, _ := now.Date()
	if last := daysIn(year, month); dueDay > last {
		dueDay = last
	}
	return time.Date(year, month, dueDay, 0, 0, 0, 0, now.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// GenerateDues derives the set of fee dues owed by a student from the fee
// structure catalog for the student's grade. One due per active structure
// item, amountPaid zero, status due. If the student is assigned an active
// transportation route, one monthly Transport due is added with the route's
// fare. Inactive items are skipped.
func GenerateDues(student *models.Student, items []*models.FeeStructureItem, route *models.TransportationRoute, now time.Time) []*models.FeeDue {
	var dues []*models.FeeDue
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		period := PeriodLabel(item.Frequency, now)
		dues = append(dues, &models.FeeDue{
			StudentID:   student.ID,
			FeeType:     item.FeeType,
			Description: fmt.Sprintf("%s Fee (%s)", item.FeeType, period),
			Period:      period,
			Amount:      item.Amount,
			AmountPaid:  0,
			Status:      models.DueStatusDue,
			DueDate:     ProjectDueDate(now, item.DueDay),
		})
	}

	if route != nil && route.IsActive && route.MonthlyFare > 0 {
		period := PeriodLabel(models.FrequencyMonthly, now)
		dues = append(dues, &models.FeeDue{
			StudentID:   student.ID,
			FeeType:     TransportFeeType,
			Description: fmt.Sprintf("%s Fee (%s)", TransportFeeType, period),
			Period:      period,
			Amount:      route.MonthlyFare,
			AmountPaid:  0,
			Status:      models.DueStatusDue,
			DueDate:     ProjectDueDate(now, 1),
		})
	}

	return dues
}

// StatusFor computes the stored status from amount and amountPaid. Overdue is
// never derived here; it is set by the overdue sweep.
func StatusFor(amount, amountPaid float64) models.DueStatus {
	switch {
	case amountPaid >= amount:
		return models.DueStatusPaid
	case amountPaid > 0:
		return models.DueStatusPartial
	default:
		return models.DueStatusDue
	}
}

// ApplyPayment applies an amount against a due, increasing amountPaid and
// recomputing the status. Applying zero changes nothing; negative amounts are
// rejected since amountPaid must never decrease.
func ApplyPayment(due *models.FeeDue, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("payment amount must not be negative, got %.2f", amount)
	}
	if amount == 0 {
		return nil
	}
	due.AmountPaid += amount
	due.Status = StatusFor(due.Amount, due.AmountPaid)
	return nil
}

// IsOverdue reports whether the sweep should move the due to overdue: an
// unpaid or partially paid due whose due date has passed. Paid dues are never
// touched, and an already overdue due stays overdue, so the sweep is
// idempotent.
func IsOverdue(due *models.FeeDue, now time.Time) bool {
	if due.Status != models.DueStatusDue && due.Status != models.DueStatusPartial {
		return false
	}
	return due.DueDate.Before(now)
}

// DefaulterStatuses is the set of statuses counted as defaulting. Partial is
// deliberately excluded, preserving the long-standing reporting behavior.
var DefaulterStatuses = []models.DueStatus{models.DueStatusDue, models.DueStatusOverdue}

// IsDefaulterStatus reports whether a due in this status counts toward the
// defaulter list.
func IsDefaulterStatus(s models.DueStatus) bool {
	for _, d := range DefaulterStatuses {
		if s == d {
			return true
		}
	}
	return false
}

// DefaulterRow is one row of the defaulter report: the due joined with the
// owning student's display fields. Student fields read "Unknown" when the
// student record no longer resolves.
type DefaulterRow struct {
	DueID           int64            `json:"due_id"`
	StudentID       int64            `json:"student_id"`
	StudentName     string           `json:"student_name"`
	AdmissionNumber string           `json:"admission_number"`
	Grade           string           `json:"grade"`
	FeeType         string           `json:"fee_type"`
	Period          string           `json:"period"`
	Amount          float64          `json:"amount"`
	AmountPaid      float64          `json:"amount_paid"`
	Status          models.DueStatus `json:"status"`
	DueDate         time.Time        `json:"due_date"`
}
