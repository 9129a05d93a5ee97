package workbook

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrFileNotFound is returned when the workbook file does not exist.
	ErrFileNotFound = errors.New("workbook file not found")
	// ErrSheetNotFound is returned when a sheet name is not present in the workbook.
	ErrSheetNotFound = errors.New("sheet not found")
)

// Workbook defines the interface for read-only spreadsheet access.
type Workbook interface {
	// SheetNames lists the sheets in workbook order.
	SheetNames() []string
	// LastRow returns the 1-based number of the last used row of a sheet, 0 when empty.
	LastRow(sheet string) (int, error)
	// Cell returns the typed value at a 1-based row and column.
	Cell(sheet string, row, col int) (Cell, error)
	// Close releases the underlying file.
	Close() error
}

// Open opens an xlsx workbook read-only.
func Open(path string) (Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat workbook %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &excelizeWorkbook{file: f}, nil
}

// NewFromFile wraps an already opened excelize file.
func NewFromFile(f *excelize.File) Workbook {
	return &excelizeWorkbook{file: f}
}

type excelizeWorkbook struct {
	file *excelize.File
}

func (w *excelizeWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

func (w *excelizeWorkbook) LastRow(sheet string) (int, error) {
	if idx, err := w.file.GetSheetIndex(sheet); err != nil || idx < 0 {
		return 0, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to read rows of %s: %w", sheet, err)
	}
	return len(rows), nil
}

func (w *excelizeWorkbook) Cell(sheet string, row, col int) (Cell, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return Cell{}, fmt.Errorf("invalid cell position row=%d col=%d: %w", row, col, err)
	}

	raw, err := w.file.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return Cell{}, fmt.Errorf("failed to read cell %s!%s: %w", sheet, axis, err)
	}
	if strings.TrimSpace(raw) == "" {
		return Cell{Kind: KindBlank}, nil
	}

	typ, err := w.file.GetCellType(sheet, axis)
	if err != nil {
		return Cell{}, fmt.Errorf("failed to read cell type %s!%s: %w", sheet, axis, err)
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return Cell{Kind: KindText, Raw: raw}, nil
	case excelize.CellTypeDate:
		t, err := parseISODate(raw)
		if err != nil {
			return Cell{Kind: KindOther, Raw: raw}, nil
		}
		return Date(t), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Cell{Kind: KindText, Raw: raw}, nil
		}
		if w.isDateStyled(sheet, axis) {
			t, err := excelize.ExcelDateToTime(v, false)
			if err != nil {
				return Cell{Kind: KindOther, Raw: raw}, nil
			}
			return Date(t), nil
		}
		return Cell{Kind: KindNumber, Raw: raw, Number: v}, nil
	default:
		return Cell{Kind: KindOther, Raw: raw}, nil
	}
}

func (w *excelizeWorkbook) Close() error {
	return w.file.Close()
}

// isDateStyled reports whether the number format of a cell renders a date.
func (w *excelizeWorkbook) isDateStyled(sheet, axis string) bool {
	styleID, err := w.file.GetCellStyle(sheet, axis)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := w.file.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormat(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

// isBuiltInDateFormat covers the built-in date and date-time formats,
// including the East Asian ones.
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormat inspects a custom number format for year or day tokens,
// ignoring quoted literals and bracketed sections such as colors.
func isDateFormat(format string) bool {
	var b strings.Builder
	quoted, bracket := false, false
	for _, r := range format {
		switch {
		case r == '"':
			quoted = !quoted
		case r == '[' && !quoted:
			bracket = true
		case r == ']' && !quoted:
			bracket = false
		case !quoted && !bracket:
			b.WriteRune(r)
		}
	}
	lower := strings.ToLower(b.String())
	return strings.ContainsAny(lower, "yd")
}

func parseISODate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", raw)
}
