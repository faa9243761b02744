package models

import "time"

// TransportationRoute is a bus route students can be assigned to.
// The monthly fare is billed through the fee ledger like any other fee.
type TransportationRoute struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	DistanceKM  float64   `json:"distance_km" validate:"gte=0"`
	MonthlyFare float64   `json:"monthly_fare" validate:"required,gt=0"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
