// ABOUTME: Database schema definitions for generation runs and the sales table
// ABOUTME: Handles SQLite table creation and initialization
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	num_products INTEGER NOT NULL,
	years INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	category TEXT NOT NULL,
	subcategory TEXT NOT NULL,
	start_date DATE NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(id)
);

CREATE INDEX IF NOT EXISTS idx_products_run_id ON products(run_id);

CREATE TABLE IF NOT EXISTS sales (
	product_id TEXT NOT NULL,
	date DATE NOT NULL,
	sales INTEGER NOT NULL,
	FOREIGN KEY (product_id) REFERENCES products(id)
);

CREATE INDEX IF NOT EXISTS idx_sales_product_date ON sales(product_id, date);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
