package models

import "time"

// FeeStructureItem defines the scheduled amount for one fee type in one grade.
// Uniqueness of (grade, fee_type) is not enforced; scans take the first match.
type FeeStructureItem struct {
	ID        int64        `json:"id"`
	Grade     string       `json:"grade" validate:"required"`
	FeeType   string       `json:"fee_type" validate:"required"`
	Amount    float64      `json:"amount" validate:"required,gt=0"`
	Frequency FeeFrequency `json:"frequency" validate:"required,oneof=monthly quarterly annual one_time"`
	DueDay    int          `json:"due_day" validate:"gte=1,lte=31"`
	IsActive  bool         `json:"is_active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
