package database

import (
	"database/sql"
	"fmt"

	"github.com/manojgangula07/fee-receipt-manager1/app/models"
)

const settingsColumns = `id, school_name, address, phone, email, receipt_prefix, tax_percent, footer_text, currency_symbol, updated_at`

func scanSettings(scanner interface{ Scan(...interface{}) error }) (*models.SchoolSettings, error) {
	s := &models.SchoolSettings{}
	err := scanner.Scan(
		&s.ID, &s.SchoolName, &s.Address, &s.Phone, &s.Email,
		&s.ReceiptPrefix, &s.TaxPercent, &s.FooterText, &s.CurrencySymbol, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetSettings returns the singleton settings row, seeded at migration time.
func GetSettings(db *sql.DB) (*models.SchoolSettings, error) {
	row := db.QueryRow(`SELECT ` + settingsColumns + ` FROM school_settings WHERE id = 1`)
	return scanSettings(row)
}

func getSettingsTx(tx *sql.Tx) (*models.SchoolSettings, error) {
	row := tx.QueryRow(`SELECT ` + settingsColumns + ` FROM school_settings WHERE id = 1`)
	return scanSettings(row)
}

// UpdateSettings replaces the settings record wholesale.
func UpdateSettings(db *sql.DB, s *models.SchoolSettings) error {
	query := `UPDATE school_settings
			  SET school_name = $1, address = $2, phone = $3, email = $4, receipt_prefix = $5,
			      tax_percent = $6, footer_text = $7, currency_symbol = $8, updated_at = NOW()
			  WHERE id = 1`

	result, err := db.Exec(query, s.SchoolName, s.Address, s.Phone, s.Email,
		s.ReceiptPrefix, s.TaxPercent, s.FooterText, s.CurrencySymbol)
	if err != nil {
		return fmt.Errorf("failed to update settings: %v", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
