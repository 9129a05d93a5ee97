package sheets

import (
	"errors"
	"fmt"

	"workday-audit/feature/schedule"
)

// ErrInvalidSource is returned when a source configuration is unusable.
var ErrInvalidSource = errors.New("invalid source configuration")

// SourceConfig describes where the fields of one spreadsheet live.
// Columns and rows are 1-based. A zero column marks an optional field as absent.
type SourceConfig struct {
	// Sheet is the name of the worksheet to read.
	Sheet string `mapstructure:"sheet" default:""`
	// FirstRow is the first data row below the header.
	FirstRow int `mapstructure:"first_row" default:"2"`
	// SiteKeyColumn holds the cross-source site key. Zero makes the source unkeyed.
	SiteKeyColumn int `mapstructure:"site_key_column" default:"0"`
	// SiteNumberColumn holds the display site number.
	SiteNumberColumn int `mapstructure:"site_number_column" default:"0"`
	// SiteNameColumn holds the site name.
	SiteNameColumn int `mapstructure:"site_name_column" default:"0"`
	// StatusColumn holds the progress status.
	StatusColumn int `mapstructure:"status_column" default:"0"`
	// DayCountColumn holds the declared number of work days.
	DayCountColumn int `mapstructure:"day_count_column" default:"0"`
	// WorkDaysColumn holds the work-day dates.
	WorkDaysColumn int `mapstructure:"work_days_column" default:"0"`
	// IgnoreKeys is a comma-delimited list of site keys to drop.
	IgnoreKeys string `mapstructure:"ignore_keys" default:""`
}

// Keyed reports whether the source has a site key column.
func (c SourceConfig) Keyed() bool {
	return c.SiteKeyColumn > 0
}

// IgnoreSet builds the set of ignored site keys.
func (c SourceConfig) IgnoreSet() schedule.KeySet {
	return schedule.ParseKeySet(c.IgnoreKeys)
}

// Validate rejects a configuration missing a sheet name or a required column.
func (c SourceConfig) Validate(name string) error {
	if c.Sheet == "" {
		return fmt.Errorf("%w: %s.sheet is required", ErrInvalidSource, name)
	}
	if c.FirstRow < 1 {
		return fmt.Errorf("%w: %s.first_row must be at least 1, got %d", ErrInvalidSource, name, c.FirstRow)
	}

	required := []struct {
		key   string
		value int
	}{
		{"site_name_column", c.SiteNameColumn},
		{"day_count_column", c.DayCountColumn},
		{"work_days_column", c.WorkDaysColumn},
	}
	for _, col := range required {
		if col.value < 1 {
			return fmt.Errorf("%w: %s.%s is required", ErrInvalidSource, name, col.key)
		}
	}

	optional := []struct {
		key   string
		value int
	}{
		{"site_key_column", c.SiteKeyColumn},
		{"site_number_column", c.SiteNumberColumn},
		{"status_column", c.StatusColumn},
	}
	for _, col := range optional {
		if col.value < 0 {
			return fmt.Errorf("%w: %s.%s must not be negative", ErrInvalidSource, name, col.key)
		}
	}

	return nil
}
