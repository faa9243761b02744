package models

import "time"

// SchoolSettings is the single process-wide settings record. It is seeded with
// defaults at migration time and replaced wholesale on update.
type SchoolSettings struct {
	ID             int64     `json:"id"`
	SchoolName     string    `json:"school_name" validate:"required"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email" validate:"omitempty,email"`
	ReceiptPrefix  string    `json:"receipt_prefix" validate:"required"`
	TaxPercent     float64   `json:"tax_percent" validate:"gte=0,lte=100"`
	FooterText     string    `json:"footer_text"`
	CurrencySymbol string    `json:"currency_symbol"`
	UpdatedAt      time.Time `json:"updated_at"`
}
