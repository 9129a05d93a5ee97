package sheets

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"workday-audit/core/workbook"
	"workday-audit/core/workbook/mocks"
	"workday-audit/feature/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const sheet = "Schedule"

func firstConfig() SourceConfig {
	return SourceConfig{
		Sheet:            sheet,
		FirstRow:         2,
		SiteKeyColumn:    1,
		SiteNumberColumn: 2,
		SiteNameColumn:   3,
		StatusColumn:     4,
		DayCountColumn:   5,
		WorkDaysColumn:   6,
		IgnoreKeys:       "S-IGN",
	}
}

// mockGrid registers every cell of rows, keyed by row number, columns starting at 1.
func mockGrid(m *mocks.Workbook, rows map[int][]workbook.Cell) {
	last := 1
	for r, cells := range rows {
		if r > last {
			last = r
		}
		for c, cell := range cells {
			m.On("Cell", sheet, r, c+1).Return(cell, nil)
		}
	}
	m.On("LastRow", sheet).Return(last, nil)
}

func newLoader() *Loader {
	return NewLoader(schedule.NewTokenizer(schedule.DefaultSeparators), "-X", zap.NewNop())
}

func TestLoader_Load(t *testing.T) {
	m := new(mocks.Workbook)
	mockGrid(m, map[int][]workbook.Cell{
		2: {workbook.Text("S-001"), workbook.Number(11), workbook.Text("1-23"), workbook.Text("in work"), workbook.Number(2), workbook.Text("2024/05/03、2024/05/07")},
		3: {workbook.Text("S-002"), workbook.Number(12), workbook.Text("site"), workbook.Text("in work"), workbook.Text("n/a"), workbook.Text("2024/05/03")},
		4: {workbook.Text("S-IGN"), workbook.Number(13), workbook.Text("site"), workbook.Text("in work"), workbook.Number(1), workbook.Text("2024/05/03")},
		5: {workbook.Text("S-003-X"), workbook.Number(14), workbook.Text("site"), workbook.Text("in work"), workbook.Number(1), workbook.Text("2024/05/03")},
		6: {workbook.Text("S-004"), workbook.Number(15), workbook.Text("site"), workbook.Text("done"), workbook.Number(1), workbook.Text("2024/05/03,bad")},
	})

	c, report, err := newLoader().Load(m, "first", firstConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"S-001", "S-004"}, c.Keys())
	wd, ok := c.Get("S-001")
	require.True(t, ok)
	assert.Equal(t, "0001-23", wd.SiteName)
	assert.Equal(t, "11", wd.SiteNumber)
	assert.Equal(t, "2024/05/03|2024/05/07", wd.Days.String())

	assert.Equal(t, 6, report.LastRow)
	assert.Equal(t, 5, report.Rows)
	assert.Equal(t, 2, report.Accepted)
	require.Len(t, report.Skips, 1)
	assert.Equal(t, Skip{Source: "first", Sheet: sheet, Row: 3, SiteKey: "S-002", Outcome: schedule.SkippedCount, Reason: report.Skips[0].Reason}, report.Skips[0])
	require.Len(t, report.Filtered, 2)
	assert.Equal(t, schedule.Ignored, report.Filtered[0].Outcome)
	assert.Equal(t, schedule.Suffixed, report.Filtered[1].Outcome)

	require.Len(t, report.DateErrors, 1)
	assert.Equal(t, "S-004", report.DateErrors[0].SiteKey)
	assert.False(t, report.Passed())
	m.AssertExpectations(t)
}

func TestLoader_DuplicateKey(t *testing.T) {
	m := new(mocks.Workbook)
	mockGrid(m, map[int][]workbook.Cell{
		2: {workbook.Text("S-001"), workbook.Number(1), workbook.Text("a"), workbook.Text("in work"), workbook.Number(1), workbook.Text("2024/05/03")},
		3: {workbook.Text("S-001"), workbook.Number(2), workbook.Text("b"), workbook.Text("in work"), workbook.Number(1), workbook.Text("2024/05/07")},
	})

	_, _, err := newLoader().Load(m, "first", firstConfig())
	assert.ErrorIs(t, err, schedule.ErrDuplicateKey)
}

func TestLoader_MissingSheet(t *testing.T) {
	m := new(mocks.Workbook)
	m.On("LastRow", sheet).Return(0, workbook.ErrSheetNotFound)

	_, _, err := newLoader().Load(m, "second", firstConfig())
	assert.ErrorIs(t, err, workbook.ErrSheetNotFound)
	assert.Contains(t, err.Error(), "second")
}

func TestLoader_CellError(t *testing.T) {
	m := new(mocks.Workbook)
	m.On("LastRow", sheet).Return(2, nil)
	m.On("Cell", sheet, 2, mock.Anything).Return(workbook.Cell{}, errors.New("corrupt"))

	_, _, err := newLoader().Load(m, "first", firstConfig())
	assert.ErrorContains(t, err, "row 2")
}

func TestLoader_UnkeyedSource(t *testing.T) {
	cfg := SourceConfig{Sheet: sheet, FirstRow: 2, SiteNameColumn: 1, DayCountColumn: 2, WorkDaysColumn: 3}
	m := new(mocks.Workbook)
	mockGrid(m, map[int][]workbook.Cell{
		2: {workbook.Text("a"), workbook.Number(1), workbook.Text("2024/05/03")},
		3: {workbook.Text("b"), workbook.Number(1), workbook.Text("2024/05/03")},
	})

	c, report, err := newLoader().Load(m, "second", cfg)
	require.NoError(t, err)
	assert.False(t, c.Keyed())
	assert.Equal(t, 2, c.Len())
	assert.True(t, report.Passed())
}

func TestLoader_Excelize(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)

	rows := [][]any{
		{"key", "number", "name", "status", "count", "days"},
		{"S-001", 101, "12-3", "in work", 1, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)},
		{"S-002", 102, "site", "in work", 2, "２０２４/05/07，2024/05/08"},
		{"S-003", 103, "site", "in work", 0, nil},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "first.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	wb, err := workbook.Open(path)
	require.NoError(t, err)
	defer wb.Close()

	c, report, err := newLoader().Load(wb, "first", firstConfig())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Accepted)

	wd, _ := c.Get("S-001")
	assert.Equal(t, "0012-3", wd.SiteName)
	assert.Equal(t, "2024/05/03", wd.Days.String())

	wd, _ = c.Get("S-002")
	assert.Equal(t, "2024/05/07|2024/05/08", wd.Days.String())
	assert.Equal(t, 2, wd.DeclaredDays)

	wd, _ = c.Get("S-003")
	assert.Equal(t, 0, wd.Days.Len())
}
