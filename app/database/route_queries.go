package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

// ErrRouteInUse is returned when deleting a route still assigned to students.
var ErrRouteInUse = errors.New("transportation route is still assigned to students")

const routeColumns = `id, name, description, distance_km, monthly_fare, is_active, created_at, updated_at`

func scanRoute(scanner interface{ Scan(...interface{}) error }) (*models.TransportationRoute, error) {
	r := &models.TransportationRoute{}
	err := scanner.Scan(
		&r.ID, &r.Name, &r.Description, &r.DistanceKM, &r.MonthlyFare,
		&r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func CreateRoute(db *sql.DB, route *models.TransportationRoute) error {
	query := `INSERT INTO transportation_routes (name, description, distance_km, monthly_fare, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, route.Name, route.Description, route.DistanceKM, route.MonthlyFare).Scan(
		&route.ID, &route.CreatedAt, &route.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create route: %v", err)
	}
	route.IsActive = true
	return nil
}

func GetRoutes(db *sql.DB) ([]*models.TransportationRoute, error) {
	rows, err := db.Query(`SELECT ` + routeColumns + ` FROM transportation_routes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []*models.TransportationRoute
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			continue
		}
		routes = append(routes, route)
	}
	if routes == nil {
		routes = []*models.TransportationRoute{}
	}
	return routes, nil
}

func GetRouteByID(db *sql.DB, id int64) (*models.TransportationRoute, error) {
	row := db.QueryRow(`SELECT `+routeColumns+` FROM transportation_routes WHERE id = $1`, id)
	return scanRoute(row)
}

func UpdateRoute(db *sql.DB, route *models.TransportationRoute) error {
	query := `UPDATE transportation_routes
			  SET name = $1, description = $2, distance_km = $3, monthly_fare = $4, is_active = $5, updated_at = NOW()
			  WHERE id = $6`

	result, err := db.Exec(query, route.Name, route.Description, route.DistanceKM,
		route.MonthlyFare, route.IsActive, route.ID)
	if err != nil {
		return fmt.Errorf("failed to update route: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteRoute removes a route unless students still reference it.
func DeleteRoute(db *sql.DB, id int64) error {
	var referenced int
	if err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE route_id = $1`, id).Scan(&referenced); err != nil {
		return err
	}
	if referenced > 0 {
		return ErrRouteInUse
	}

	result, err := db.Exec(`DELETE FROM transportation_routes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete route: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
