// ABOUTME: Tests for database open, schema init, and run bookkeeping
// ABOUTME: Uses a temp-dir database per test, mirroring real on-disk behavior
package db

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestOpenDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "salesgen.db")

	database, err := OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	defer database.Close()

	// Verify database file exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	// Verify schema was initialized
	var count int
	err = database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table'").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query tables: %v", err)
	}
	if count < 3 {
		t.Errorf("Expected at least 3 tables, got %d", count)
	}

	// Verify WAL mode
	var mode string
	err = database.QueryRow("PRAGMA journal_mode").Scan(&mode)
	if err != nil {
		t.Fatalf("Failed to query journal mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("Expected WAL mode, got %s", mode)
	}
}

func TestCreateRun(t *testing.T) {
	database := setupTestDB(t)

	run := &Run{NumProducts: 10, Years: 3}
	if err := CreateRun(database, run); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	if run.ID == "" {
		t.Error("Run ID was not set")
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}

	found, err := GetRun(database, run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if found == nil {
		t.Fatal("GetRun returned nil for existing run")
	}
	if found.NumProducts != 10 || found.Years != 3 {
		t.Errorf("Run round trip mismatch: %+v", found)
	}
}

func TestGetRunMissing(t *testing.T) {
	database := setupTestDB(t)

	found, err := GetRun(database, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if found != nil {
		t.Errorf("Expected nil for missing run, got %+v", found)
	}
}

func TestLatestRun(t *testing.T) {
	database := setupTestDB(t)

	if _, err := LatestRun(database); err == nil {
		t.Error("Expected error when no runs exist")
	}

	first := &Run{NumProducts: 1, Years: 1}
	if err := CreateRun(database, first); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	second := &Run{NumProducts: 2, Years: 2}
	if err := CreateRun(database, second); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	latest, err := LatestRun(database)
	if err != nil {
		t.Fatalf("LatestRun failed: %v", err)
	}
	if latest.ID != second.ID {
		t.Errorf("Expected latest run %s, got %s", second.ID, latest.ID)
	}
}
