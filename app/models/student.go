package models

import "time"

// Student represents an enrolled student.
type Student struct {
	ID              int64     `json:"id"`
	AdmissionNumber string    `json:"admission_number" validate:"required"`
	FirstName       string    `json:"first_name" validate:"required"`
	LastName        string    `json:"last_name"`
	Grade           string    `json:"grade" validate:"required"`
	Section         string    `json:"section"`
	RollNumber      int       `json:"roll_number" validate:"gte=0"`
	GuardianName    string    `json:"guardian_name"`
	GuardianPhone   string    `json:"guardian_phone"`
	FeeCategory     string    `json:"fee_category"`
	RouteID         *int64    `json:"route_id,omitempty"`
	AdmissionDate   time.Time `json:"admission_date"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Route *TransportationRoute `json:"route,omitempty"`
}

// FullName returns the display name for receipts and reports.
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
