package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SourceConfig)
		errMsg string
	}{
		{"Valid", func(*SourceConfig) {}, ""},
		{"Missing sheet", func(c *SourceConfig) { c.Sheet = "" }, "first.sheet is required"},
		{"Zero first row", func(c *SourceConfig) { c.FirstRow = 0 }, "first.first_row"},
		{"Missing name column", func(c *SourceConfig) { c.SiteNameColumn = 0 }, "first.site_name_column is required"},
		{"Missing count column", func(c *SourceConfig) { c.DayCountColumn = 0 }, "first.day_count_column is required"},
		{"Missing days column", func(c *SourceConfig) { c.WorkDaysColumn = 0 }, "first.work_days_column is required"},
		{"Negative status column", func(c *SourceConfig) { c.StatusColumn = -1 }, "first.status_column must not be negative"},
		{"Absent key column", func(c *SourceConfig) { c.SiteKeyColumn = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := firstConfig()
			tt.mutate(&cfg)
			err := cfg.Validate("first")
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSource)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSourceConfig_Sets(t *testing.T) {
	cfg := firstConfig()
	cfg.IgnoreKeys = "A, B"

	assert.True(t, cfg.Keyed())
	assert.True(t, cfg.IgnoreSet().Has("B"))

	cfg.SiteKeyColumn = 0
	assert.False(t, cfg.Keyed())
}
