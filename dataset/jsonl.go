// ABOUTME: Newline-delimited JSON serialization of series records
// ABOUTME: Writes atomically via a temp file so a failed run leaves no partial output
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/salesgen/models"
)

// Write serializes the dataset to path, one compact JSON object per line in
// record order, no trailing framing. Output lands via rename from a temp file
// in the same directory, so the destination is either the complete dataset or
// untouched.
func Write(path string, ds models.Dataset) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".salesgen-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for i, record := range ds {
		line, merr := json.Marshal(record)
		if merr != nil {
			return fmt.Errorf("marshal record %d: %w", i, merr)
		}
		if _, werr := w.Write(line); werr != nil {
			return fmt.Errorf("write record %d: %w", i, werr)
		}
		if werr := w.WriteByte('\n'); werr != nil {
			return fmt.Errorf("write record %d: %w", i, werr)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// Read parses a JSONL dataset file back into records, preserving line order.
func Read(path string) (models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ds models.Dataset
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var record models.SeriesRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		ds = append(ds, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ds, nil
}
