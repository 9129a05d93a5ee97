package run

import (
	"fmt"

	"workday-audit/core/workbook"
	"workday-audit/feature/schedule"
	"workday-audit/feature/sheets"
)

// RecordSource loads the collection of a named source.
// The runner depends on this interface, not on spreadsheet files.
//
//go:generate mockgen -destination=mocks/mock_source.go -source=source.go RecordSource
type RecordSource interface {
	Load(name string, cfg sheets.SourceConfig) (*schedule.Collection, *sheets.LoadReport, error)
}

// WorkbookSource reads sources from spreadsheet files.
type WorkbookSource struct {
	paths  map[string]string
	loader *sheets.Loader
}

// NewWorkbookSource maps source names to workbook paths.
func NewWorkbookSource(loader *sheets.Loader, paths map[string]string) *WorkbookSource {
	return &WorkbookSource{paths: paths, loader: loader}
}

// Load opens the workbook of name and reads its configured sheet.
func (s *WorkbookSource) Load(name string, cfg sheets.SourceConfig) (*schedule.Collection, *sheets.LoadReport, error) {
	path, ok := s.paths[name]
	if !ok {
		return nil, nil, fmt.Errorf("no workbook for source %s", name)
	}
	wb, err := workbook.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s workbook: %w", name, err)
	}
	defer wb.Close()

	return s.loader.Load(wb, name, cfg)
}
