// ABOUTME: Tests for JSONL dataset serialization
// ABOUTME: Covers exact line format, round trips, order, and temp-file cleanup
package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/salesgen/models"
)

func TestWriteSingleRecordLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.json")
	ds := models.Dataset{
		{Start: models.NewDate(2020, time.January, 1), Cat: 0, Target: []int64{1, 2, 3}},
	}

	require.NoError(t, Write(path, ds))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"start":"2020-01-01","cat":0,"target":[1,2,3]}`+"\n", string(data))
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	ds := models.Dataset{
		{Start: models.NewDate(2021, time.March, 5), Cat: 2, Target: []int64{10, 0, -3, 44}},
		{Start: models.NewDate(2021, time.March, 5), Cat: 5, Target: []int64{10, 0, -3, 44}},
		{Start: models.NewDate(2019, time.December, 31), Cat: 1, Target: []int64{7}},
	}

	require.NoError(t, Write(path, ds))

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, len(ds))

	for i := range ds {
		assert.True(t, got[i].Start.Equal(ds[i].Start.Time), "record %d start", i)
		assert.Equal(t, ds[i].Cat, got[i].Cat, "record %d cat", i)
		assert.Equal(t, ds[i].Target, got[i].Target, "record %d target", i)
	}
}

func TestWriteEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "train.json")
	ds := models.Dataset{
		{Start: models.NewDate(2020, time.July, 4), Cat: 3, Target: []int64{1}},
	}
	require.NoError(t, Write(path, ds))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "train.json", entries[0].Name())
}

func TestWriteOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.json")
	require.NoError(t, os.WriteFile(path, []byte("stale contents\n"), 0644))

	ds := models.Dataset{
		{Start: models.NewDate(2022, time.February, 2), Cat: 0, Target: []int64{5, 6}},
	}
	require.NoError(t, Write(path, ds))

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int64{5, 6}, got[0].Target)
}

func TestReadRejectsMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{\"start\":\"2020-01-01\",\"cat\":0,\"target\":[1]}\nnot json\n"), 0644))

	_, err := Read(path)
	assert.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
