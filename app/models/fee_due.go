package models

import "time"

// FeeDue is one owed-amount line for a student for a fee type and period.
// AmountPaid only ever increases; there is no reversal operation.
type FeeDue struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"student_id"`
	FeeType     string    `json:"fee_type"`
	Description string    `json:"description"`
	Period      string    `json:"period"`
	Amount      float64   `json:"amount"`
	AmountPaid  float64   `json:"amount_paid"`
	Status      DueStatus `json:"status"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Outstanding returns the unpaid remainder of the due.
func (d *FeeDue) Outstanding() float64 {
	return d.Amount - d.AmountPaid
}
