package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testYAML = `
log:
  level: error
first:
  sheet: First
  site_key_column: 1
  site_number_column: 2
  site_name_column: 3
  status_column: 4
  day_count_column: 5
  work_days_column: 6
second:
  sheet: Second
  site_key_column: 1
  site_name_column: 2
  day_count_column: 3
  work_days_column: 4
check:
  status_at_work: in work
`

func writeSheet(t *testing.T, path, sheet string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
}

func fixture(t *testing.T, secondName string) (dir, first, second string) {
	t.Helper()
	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "workdays.yaml"), []byte(testYAML), 0o644))

	first = filepath.Join(dir, "first.xlsx")
	writeSheet(t, first, "First", [][]any{
		{"key", "number", "name", "status", "count", "days"},
		{"S-001-0001", 1, "1-234", "in work", 2, "2024/05/07,2024/05/08"},
	})
	second = filepath.Join(dir, "second.xlsx")
	writeSheet(t, second, "Second", [][]any{
		{"key", "name", "count", "days"},
		{"S-001-0001", secondName, 2, "2024/05/08、2024/05/07"},
	})
	return dir, first, second
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		configDir, outputPath, outputFormat, strict, dayFlag = ".", "", "", false, ""
	})
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func TestCheckCommand(t *testing.T) {
	dir, first, second := fixture(t, "0001-234")
	out := filepath.Join(dir, "out", "result.json")

	err := execute(t, "check", first, second, "--config-dir", dir, "--day", "2024/05/07", "-o", out, "--strict")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, true, result["all_passed"])
	assert.NotEmpty(t, result["run_id"])
}

func TestCheckCommand_StrictFailure(t *testing.T) {
	dir, first, second := fixture(t, "renamed")

	err := execute(t, "check", first, second, "--config-dir", dir, "--strict")
	assert.ErrorIs(t, err, ErrChecksFailed)
}

func TestDayCommand(t *testing.T) {
	dir, first, _ := fixture(t, "")
	out := filepath.Join(dir, "day.yaml")

	require.NoError(t, execute(t, "day", first, "2024/05/08", "--config-dir", dir, "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: 0001-234")
	assert.Contains(t, string(data), "position: 2")
}

func TestSiteCommand(t *testing.T) {
	dir, first, second := fixture(t, "renamed")

	err := execute(t, "site", first, second, "S-001-0001", "--config-dir", dir, "--strict")
	assert.ErrorIs(t, err, ErrChecksFailed)
}

func TestCommand_MissingFile(t *testing.T) {
	dir, first, _ := fixture(t, "")

	err := execute(t, "check", first, filepath.Join(dir, "nope.xlsx"), "--config-dir", dir)
	assert.ErrorContains(t, err, "open second workbook")
}
