package run

import (
	"path/filepath"
	"testing"

	"workday-audit/core/workbook"
	"workday-audit/feature/schedule"
	"workday-audit/feature/sheets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestWorkbookSource_Load(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"key", "name", "count", "days"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"K1", "site", 1, "2024/05/07"}))
	path := filepath.Join(t.TempDir(), "first.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	cfg := sheets.SourceConfig{Sheet: "Sheet1", FirstRow: 2, SiteKeyColumn: 1, SiteNameColumn: 2, DayCountColumn: 3, WorkDaysColumn: 4}
	loader := sheets.NewLoader(schedule.NewTokenizer(schedule.DefaultSeparators), "", zap.NewNop())
	src := NewWorkbookSource(loader, map[string]string{First: path, Second: filepath.Join(t.TempDir(), "missing.xlsx")})

	c, lr, err := src.Load(First, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, lr.Accepted)

	_, _, err = src.Load(Second, cfg)
	assert.ErrorIs(t, err, workbook.ErrFileNotFound)

	_, _, err = src.Load("third", cfg)
	assert.ErrorContains(t, err, "no workbook for source third")

	cfg.Sheet = "Nope"
	_, _, err = src.Load(First, cfg)
	assert.ErrorIs(t, err, workbook.ErrSheetNotFound)
}
