// ABOUTME: Raw sales table persistence and date aggregation
// ABOUTME: Batched inserts plus the GROUP BY query feeding the series transformer
package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/salesgen/models"
)

// InsertSales stores daily sales rows in one transaction.
func InsertSales(db *sql.DB, records []models.SalesRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO sales (product_id, date, sales) VALUES (?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.ProductID.String(), r.Date.String(), r.Sales); err != nil {
			return fmt.Errorf("insert sales row %s @ %s: %w", r.ProductID, r.Date, err)
		}
	}
	return tx.Commit()
}

// GetDailySales returns one date-summed row per day for a product, ordered by
// date ascending. Summing here mirrors the transformer's duplicate-row defense.
func GetDailySales(db *sql.DB, productID uuid.UUID) ([]models.DailySales, error) {
	rows, err := db.Query(`
		SELECT date, SUM(sales) FROM sales
		WHERE product_id = ? GROUP BY date ORDER BY date
	`, productID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var daily []models.DailySales
	for rows.Next() {
		var d models.DailySales
		var date string
		if err := rows.Scan(&date, &d.Sales); err != nil {
			return nil, err
		}
		if d.Date, err = models.ParseDate(date); err != nil {
			return nil, err
		}
		daily = append(daily, d)
	}
	return daily, rows.Err()
}
