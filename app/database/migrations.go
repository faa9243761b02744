package database

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// RunMigrations creates the schema if missing and seeds the singleton
// settings row. Every statement is idempotent so startup can run this
// unconditionally.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS transportation_routes (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			distance_km NUMERIC NOT NULL DEFAULT 0,
			monthly_fare NUMERIC NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id SERIAL PRIMARY KEY,
			admission_number TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL DEFAULT '',
			grade TEXT NOT NULL,
			section TEXT NOT NULL DEFAULT 'A',
			roll_number INTEGER NOT NULL DEFAULT 0,
			guardian_name TEXT NOT NULL DEFAULT '',
			guardian_phone TEXT NOT NULL DEFAULT '',
			fee_category TEXT NOT NULL DEFAULT '',
			route_id INTEGER REFERENCES transportation_routes(id),
			admission_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fee_structure_items (
			id SERIAL PRIMARY KEY,
			grade TEXT NOT NULL,
			fee_type TEXT NOT NULL,
			amount NUMERIC NOT NULL,
			frequency TEXT NOT NULL,
			due_day INTEGER NOT NULL DEFAULT 1,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fee_dues (
			id SERIAL PRIMARY KEY,
			student_id INTEGER NOT NULL,
			fee_type TEXT NOT NULL,
			description TEXT NOT NULL,
			period TEXT NOT NULL,
			amount NUMERIC NOT NULL,
			amount_paid NUMERIC NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'due',
			due_date TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// Due generation is idempotent per (student, feeType, period).
		`CREATE UNIQUE INDEX IF NOT EXISTS fee_dues_student_type_period_idx
			ON fee_dues (student_id, fee_type, period)`,
		`CREATE TABLE IF NOT EXISTS receipts (
			id SERIAL PRIMARY KEY,
			receipt_number TEXT NOT NULL UNIQUE,
			student_id INTEGER NOT NULL,
			date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			total_amount NUMERIC NOT NULL,
			payment_method TEXT NOT NULL,
			reference TEXT,
			remarks TEXT,
			status TEXT NOT NULL DEFAULT 'completed',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS receipt_items (
			id SERIAL PRIMARY KEY,
			receipt_id INTEGER NOT NULL REFERENCES receipts(id),
			fee_due_id INTEGER NOT NULL,
			fee_type TEXT NOT NULL,
			description TEXT NOT NULL,
			period TEXT NOT NULL,
			amount NUMERIC NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS school_settings (
			id INTEGER PRIMARY KEY,
			school_name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			receipt_prefix TEXT NOT NULL DEFAULT 'REC',
			tax_percent NUMERIC NOT NULL DEFAULT 0,
			footer_text TEXT NOT NULL DEFAULT '',
			currency_symbol TEXT NOT NULL DEFAULT 'Rs.',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// Atomic receipt numbering; replaces counting existing receipts.
		`CREATE SEQUENCE IF NOT EXISTS receipt_number_seq START 1`,
		`CREATE INDEX IF NOT EXISTS fee_dues_student_idx ON fee_dues (student_id)`,
		`CREATE INDEX IF NOT EXISTS fee_dues_status_idx ON fee_dues (status)`,
		`CREATE INDEX IF NOT EXISTS receipts_student_idx ON receipts (student_id)`,
		`INSERT INTO school_settings (id, school_name)
			VALUES (1, 'My School') ON CONFLICT (id) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	if err := seedAdminUser(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// seedAdminUser creates a default admin account when the users table is
// empty, so a fresh install can log in. The password should be changed
// immediately through /auth/change-password.
func seedAdminUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin1234"), 14)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO users (email, password, first_name, last_name)
		VALUES ($1, $2, $3, $4)`,
		"admin@school.local", string(hashed), "Admin", "User")
	if err != nil {
		return err
	}
	log.Println("Seeded default admin user admin@school.local")
	return nil
}
