package models

// FeeFrequency defines how often a fee structure item is billed.
type FeeFrequency string

const (
	FrequencyMonthly   FeeFrequency = "monthly"
	FrequencyQuarterly FeeFrequency = "quarterly"
	FrequencyAnnual    FeeFrequency = "annual"
	FrequencyOneTime   FeeFrequency = "one_time"
)

// DueStatus defines the lifecycle status of a fee due.
type DueStatus string

const (
	DueStatusDue     DueStatus = "due"
	DueStatusPartial DueStatus = "partial"
	DueStatusPaid    DueStatus = "paid"
	DueStatusOverdue DueStatus = "overdue"
)

// PaymentMethod defines how a receipt was settled.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentUPI          PaymentMethod = "upi"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheque       PaymentMethod = "cheque"
)

// ReceiptStatus defines the status of an issued receipt.
type ReceiptStatus string

const (
	ReceiptCompleted ReceiptStatus = "completed"
	ReceiptCancelled ReceiptStatus = "cancelled"
)
