// ABOUTME: Generation run bookkeeping
// ABOUTME: Each synthesis run gets a ULID so datasets can be rebuilt later
package db

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Run records one dataset generation.
type Run struct {
	ID          string
	CreatedAt   time.Time
	NumProducts int
	Years       int
}

// CreateRun inserts a new run row and assigns its ULID.
func CreateRun(db *sql.DB, run *Run) error {
	now := time.Now().UTC()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	run.ID = ulid.MustNew(ulid.Timestamp(now), entropy).String()
	run.CreatedAt = now

	_, err := db.Exec(`
		INSERT INTO runs (id, created_at, num_products, years)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.CreatedAt, run.NumProducts, run.Years)

	return err
}

// GetRun fetches a run by id. Returns nil if not found.
func GetRun(db *sql.DB, id string) (*Run, error) {
	run := &Run{}
	err := db.QueryRow(`
		SELECT id, created_at, num_products, years FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.CreatedAt, &run.NumProducts, &run.Years)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	return run, err
}

// LatestRun returns the most recently created run.
func LatestRun(db *sql.DB) (*Run, error) {
	run := &Run{}
	err := db.QueryRow(`
		SELECT id, created_at, num_products, years
		FROM runs ORDER BY created_at DESC, id DESC LIMIT 1
	`).Scan(&run.ID, &run.CreatedAt, &run.NumProducts, &run.Years)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no generation runs recorded yet")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}
