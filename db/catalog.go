// ABOUTME: Product catalog persistence
// ABOUTME: Stores and reloads products in catalog-generation order
package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/salesgen/models"
)

// InsertProducts stores a run's catalog in one transaction, preserving order
// via an explicit position column.
func InsertProducts(db *sql.DB, runID string, products []models.Product) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO products (id, run_id, position, category, subcategory, start_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range products {
		if _, err := stmt.Exec(p.ID.String(), runID, i, p.Category, p.Subcategory, p.StartDate.String()); err != nil {
			return fmt.Errorf("insert product %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

// GetProducts reloads a run's catalog in its original generation order.
func GetProducts(db *sql.DB, runID string) ([]models.Product, error) {
	rows, err := db.Query(`
		SELECT id, category, subcategory, start_date
		FROM products WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var id, startDate string
		if err := rows.Scan(&id, &p.Category, &p.Subcategory, &startDate); err != nil {
			return nil, err
		}
		if p.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("bad product id %q: %w", id, err)
		}
		if p.StartDate, err = models.ParseDate(startDate); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
