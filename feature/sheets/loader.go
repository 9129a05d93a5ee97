package sheets

import (
	"fmt"

	"workday-audit/core/workbook"
	"workday-audit/feature/schedule"

	"go.uber.org/zap"
)

// Skip is a row that produced no record.
type Skip struct {
	Source  string           `json:"source" yaml:"source"`
	Sheet   string           `json:"sheet" yaml:"sheet"`
	Row     int              `json:"row" yaml:"row"`
	SiteKey string           `json:"site_key" yaml:"site_key"`
	Outcome schedule.Outcome `json:"outcome" yaml:"outcome"`
	Reason  string           `json:"reason" yaml:"reason"`
}

// LoadReport summarizes the reading of one source.
type LoadReport struct {
	Source   string `json:"source" yaml:"source"`
	Sheet    string `json:"sheet" yaml:"sheet"`
	LastRow  int    `json:"last_row" yaml:"last_row"`
	Rows     int    `json:"rows" yaml:"rows"`
	Accepted int    `json:"accepted" yaml:"accepted"`
	// Skips are rows dropped because a cell had an unexpected type.
	Skips []Skip `json:"skips" yaml:"skips"`
	// Filtered are rows dropped by the ignore list or the key suffix.
	Filtered []Skip `json:"filtered" yaml:"filtered"`
	// DateErrors are accepted records whose work-day cell had rejected tokens.
	DateErrors []*schedule.WorkDay `json:"date_errors" yaml:"date_errors"`
}

// Passed reports whether every accepted record parsed cleanly.
func (r *LoadReport) Passed() bool {
	return len(r.DateErrors) == 0
}

// Loader reads work-day records from a workbook.
type Loader struct {
	tokenizer *schedule.Tokenizer
	suffix    string
	logger    *zap.Logger
}

// NewLoader creates a loader. An empty suffix disables suffix filtering.
func NewLoader(tokenizer *schedule.Tokenizer, suffix string, logger *zap.Logger) *Loader {
	return &Loader{
		tokenizer: tokenizer,
		suffix:    suffix,
		logger:    logger,
	}
}

// Load reads the configured sheet of wb into a collection named name.
// A missing sheet or a duplicate site key aborts the load; rows with unexpected
// cell types are reported in the LoadReport and skipped.
func (l *Loader) Load(wb workbook.Workbook, name string, cfg SourceConfig) (*schedule.Collection, *LoadReport, error) {
	lastRow, err := wb.LastRow(cfg.Sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", name, err)
	}
	l.logger.Info("Reading sheet",
		zap.String("source", name),
		zap.String("sheet", cfg.Sheet),
		zap.Int("last_row", lastRow))

	report := &LoadReport{
		Source:     name,
		Sheet:      cfg.Sheet,
		LastRow:    lastRow,
		Skips:      []Skip{},
		Filtered:   []Skip{},
		DateErrors: []*schedule.WorkDay{},
	}
	collection := schedule.NewCollection(name, cfg.Keyed())
	normalizer := schedule.NewNormalizer(l.tokenizer, cfg.IgnoreSet(), l.suffix, cfg.Keyed())

	for r := cfg.FirstRow; r <= lastRow; r++ {
		raw, err := l.readRow(wb, cfg, r)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s row %d: %w", name, r, err)
		}
		report.Rows++

		res := normalizer.Normalize(raw)
		if res.Outcome != schedule.Accepted {
			skip := Skip{
				Source:  name,
				Sheet:   cfg.Sheet,
				Row:     r,
				SiteKey: raw.SiteKey.String(),
				Outcome: res.Outcome,
				Reason:  res.Reason,
			}
			if res.Outcome.IsSkip() {
				l.logger.Warn("Row skipped",
					zap.String("source", name),
					zap.String("sheet", cfg.Sheet),
					zap.Int("row", r),
					zap.String("site_key", skip.SiteKey),
					zap.String("reason", res.Reason))
				report.Skips = append(report.Skips, skip)
			} else {
				l.logger.Debug("Row filtered",
					zap.String("source", name),
					zap.Int("row", r),
					zap.String("site_key", skip.SiteKey),
					zap.Stringer("outcome", res.Outcome))
				report.Filtered = append(report.Filtered, skip)
			}
			continue
		}

		wd := res.Record
		if err := collection.Add(wd); err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", name, err)
		}
		report.Accepted++

		if wd.Days.HasError {
			for _, issue := range wd.Days.Issues {
				l.logger.Error("Rejected work day",
					zap.String("source", name),
					zap.Int("row", r),
					zap.String("site", wd.Label()),
					zap.String("token", issue.Token),
					zap.String("kind", string(issue.Kind)))
			}
			report.DateErrors = append(report.DateErrors, wd)
		}
	}

	l.logger.Info("Sheet loaded",
		zap.String("source", name),
		zap.Int("rows", report.Rows),
		zap.Int("accepted", report.Accepted),
		zap.Int("skipped", len(report.Skips)),
		zap.Int("filtered", len(report.Filtered)))

	return collection, report, nil
}

func (l *Loader) readRow(wb workbook.Workbook, cfg SourceConfig, r int) (schedule.RawRow, error) {
	raw := schedule.RawRow{Row: r}
	fields := []struct {
		col  int
		cell *workbook.Cell
	}{
		{cfg.SiteKeyColumn, &raw.SiteKey},
		{cfg.SiteNumberColumn, &raw.SiteNumber},
		{cfg.SiteNameColumn, &raw.SiteName},
		{cfg.StatusColumn, &raw.Status},
		{cfg.DayCountColumn, &raw.DayCount},
		{cfg.WorkDaysColumn, &raw.WorkDays},
	}
	for _, f := range fields {
		if f.col < 1 {
			continue
		}
		cell, err := wb.Cell(cfg.Sheet, r, f.col)
		if err != nil {
			return raw, err
		}
		*f.cell = cell
	}
	return raw, nil
}
