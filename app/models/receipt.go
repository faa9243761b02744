package models

import "time"

// Receipt records a single payment event. Immutable once issued.
type Receipt struct {
	ID            int64         `json:"id"`
	ReceiptNumber string        `json:"receipt_number"`
	StudentID     int64         `json:"student_id"`
	Date          time.Time     `json:"date"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Reference     *string       `json:"reference,omitempty"`
	Remarks       *string       `json:"remarks,omitempty"`
	Status        ReceiptStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`

	Items []*ReceiptItem `json:"items,omitempty"`
}

// ReceiptItem is one allocation line within a receipt, paying down one fee due.
type ReceiptItem struct {
	ID          int64   `json:"id"`
	ReceiptID   int64   `json:"receipt_id"`
	FeeDueID    int64   `json:"fee_due_id"`
	FeeType     string  `json:"fee_type"`
	Description string  `json:"description"`
	Period      string  `json:"period"`
	Amount      float64 `json:"amount"`
}
